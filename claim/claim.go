package claim

import (
	"fmt"
	"iter"
)

// Width returns the number of columns covered by c.
func (c Claim) Width() uint32 { return c.X2 - c.X1 + 1 }

// Height returns the number of rows covered by c.
func (c Claim) Height() uint32 { return c.Y2 - c.Y1 + 1 }

// Area returns the number of unit squares covered by c.
func (c Claim) Area() uint64 { return uint64(c.Width()) * uint64(c.Height()) }

// String renders c back in its input form.
func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.X1, c.Y1, c.Width(), c.Height())
}

// Intersection returns the rectangle shared by a and b, with ID 0.
// The second result is false when the claims do not overlap.
// Intersection(a, b) and Intersection(b, a) are always equal.
func Intersection(a, b Claim) (Claim, bool) {
	if !IntersectsWith(a, b) {
		return Claim{}, false
	}

	return Claim{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}, true
}

// IntersectsWith reports whether a and b share at least one unit square.
// Complexity: O(1).
func IntersectsWith(a, b Claim) bool {
	return a.X1 <= b.X2 && b.X1 <= a.X2 && a.Y1 <= b.Y2 && b.Y1 <= a.Y2
}

// Points yields every unit square of c in row-major order.
func (c Claim) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := uint64(c.Y1); y <= uint64(c.Y2); y++ {
			for x := uint64(c.X1); x <= uint64(c.X2); x++ {
				if !yield(Point{X: uint32(x), Y: uint32(y)}) {
					return
				}
			}
		}
	}
}
