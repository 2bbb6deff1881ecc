package claim

import (
	"errors"
	"fmt"
)

// Sentinel errors for claim parsing and overlap queries.
var (
	// ErrFormat indicates a line does not have the "#<id> @ <x>,<y>: <w>x<h>" shape.
	ErrFormat = errors.New("claim: wrong line format")
	// ErrNumber indicates a numeric field is out of range for uint32.
	ErrNumber = errors.New("claim: number out of range")
	// ErrNoUniqueClaim indicates every claim overlaps some other claim.
	ErrNoUniqueClaim = errors.New("claim: no claim is free of overlaps")
)

// Claim is a labelled rectangle with inclusive bounds (X1,Y1)-(X2,Y2).
// X1 ≤ X2 and Y1 ≤ Y2 always hold for values built by Parse.
type Claim struct {
	ID     uint32
	X1, Y1 uint32
	X2, Y2 uint32
}

// Point is a single unit square of the grid.
type Point struct {
	X, Y uint32
}

// ParseError describes why a single line was rejected.
// Kind is ErrFormat or ErrNumber; Err carries the underlying cause, if any.
type ParseError struct {
	Line  string
	Field string
	Kind  error
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: %q", e.Kind, e.Line)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
