package claim

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// claimPattern matches "#1 @ 1,3: 4x4". The separators are part of the
// input format and must appear exactly as written.
var claimPattern = regexp.MustCompile(
	`^#(?P<id>\d+) @ (?P<x>\d+),(?P<y>\d+): (?P<width>\d+)x(?P<height>\d+)$`,
)

// Parse converts one line into a Claim with X2 = x+width-1, Y2 = y+height-1.
//
// Errors (as *ParseError):
//   - ErrFormat if the line does not match the grammar or width/height is 0.
//   - ErrNumber if a field overflows uint32 or the far edge would.
func Parse(line string) (Claim, error) {
	m := claimPattern.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, &ParseError{Line: line, Kind: ErrFormat}
	}

	var f [5]uint32
	for i, name := range []string{"id", "x", "y", "width", "height"} {
		v, err := strconv.ParseUint(m[claimPattern.SubexpIndex(name)], 10, 32)
		if err != nil {
			return Claim{}, &ParseError{Line: line, Field: name, Kind: ErrNumber, Err: err}
		}
		f[i] = uint32(v)
	}
	id, x, y, w, h := f[0], f[1], f[2], f[3], f[4]

	if w == 0 || h == 0 {
		return Claim{}, &ParseError{Line: line, Field: "size", Kind: ErrFormat,
			Err: errors.New("width and height must be positive")}
	}
	if uint64(x)+uint64(w)-1 > math.MaxUint32 {
		return Claim{}, &ParseError{Line: line, Field: "width", Kind: ErrNumber}
	}
	if uint64(y)+uint64(h)-1 > math.MaxUint32 {
		return Claim{}, &ParseError{Line: line, Field: "height", Kind: ErrNumber}
	}

	return Claim{ID: id, X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}, nil
}

// ParseAll parses every line, stopping at the first failure.
// The returned error names the 1-based line number.
func ParseAll(in []string) ([]Claim, error) {
	claims := make([]Claim, 0, len(in))
	for i, line := range in {
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		claims = append(claims, c)
	}

	return claims, nil
}
