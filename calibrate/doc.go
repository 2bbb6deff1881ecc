// Package calibrate folds a list of frequency deltas.
//
// What:
//
//   - Sum adds every delta to a starting frequency of zero.
//   - FirstRepeat cycles through the deltas until a running total is reached
//     for the second time.
//
// Complexity:
//
//   - Sum:         O(n).
//   - FirstRepeat: O(n·k), Memory: O(n·k), k = number of passes needed.
//
// Errors:
//
//   - ErrEmptyInput: no deltas were supplied.
//   - ErrNoRepeat: no running total can ever be reached twice.
package calibrate
