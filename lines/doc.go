// Package lines turns puzzle input into a slice of text lines and,
// optionally, into a slice of integers.
//
// What:
//
//   - Read / ReadFile yield every line of the input, without line terminators.
//   - Split breaks an inline sample ("+1, -2, +3") into lines.
//   - Parse converts lines into any integer type.
//
// Errors:
//
//   - ErrEmptyLine: Parse met a blank line.
//   - *LineError: wraps the failing line number and the strconv error.
package lines
