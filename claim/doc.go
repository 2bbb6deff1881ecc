// Package claim models fabric claims as axis-aligned rectangles on an
// unsigned integer grid and answers overlap questions about them.
//
// What:
//
//   - Parse reads one claim in the literal form "#<id> @ <x>,<y>: <w>x<h>".
//   - Intersection returns the overlapping rectangle of two claims.
//   - IntersectsWith answers the same question without building the overlap.
//   - ContestedArea counts unit squares covered by two or more claims.
//   - UniqueClaim finds the first claim that overlaps no other claim.
//
// Geometry:
//
//	A claim "#1 @ 1,3: 4x4" covers columns 1..4 and rows 3..6, bounds inclusive:
//
//	    x1=1       x2=4
//	y1=3  ┌─────────┐
//	      │         │
//	y2=6  └─────────┘
//
// Complexity:
//
//   - Intersection, IntersectsWith: O(1).
//   - ContestedArea: O(n² + Σ overlap area), Memory: O(contested squares).
//   - UniqueClaim:   O(n²), Memory: O(1).
//
// Inputs are puzzle sized (hundreds of claims); no sweep line is attempted.
//
// Errors:
//
//   - ErrFormat: a line does not match the claim grammar, or has a zero side.
//   - ErrNumber: a numeric field, or a far edge, does not fit in uint32.
//   - ErrNoUniqueClaim: every claim overlaps at least one other claim.
package claim
