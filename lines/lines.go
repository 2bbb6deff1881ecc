package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrEmptyLine indicates Parse met a line with no digits at all.
var ErrEmptyLine = errors.New("lines: empty line")

// LineError reports which 1-based input line could not be converted.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("lines: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Read returns every line of r with "\n" and "\r\n" terminators removed.
// A trailing newline does not produce an extra empty line.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lines: read: %w", err)
	}

	return out, nil
}

// ReadFile opens path, reads all of its lines and closes it again.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lines: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Split breaks an inline sample into lines using sep.
// An empty s yields no lines.
func Split(s, sep string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, sep)
}

// Parse converts each line into T. Surrounding whitespace is ignored and a
// leading '+' is accepted. The first failure is returned as *LineError.
func Parse[T constraints.Integer](in []string) ([]T, error) {
	out := make([]T, 0, len(in))
	for i, s := range in {
		v, err := parseOne[T](strings.TrimSpace(s))
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: s, Err: err}
		}
		out = append(out, v)
	}

	return out, nil
}

// parseOne parses s with the bit size of T so overflow is reported by strconv.
func parseOne[T constraints.Integer](s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyLine
	}
	var zero T
	bits := bitSize(zero)
	if zero-1 < zero {
		n, err := strconv.ParseInt(s, 10, bits)
		return T(n), err
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)

	return T(n), err
}

// bitSize reports the width of T in bits.
func bitSize[T constraints.Integer](T) int {
	bits := 0
	for x := T(1); x != 0; x <<= 1 {
		bits++
	}

	return bits
}
