package calibrate

import "errors"

// Sentinel errors for calibration.
var (
	// ErrEmptyInput indicates FirstRepeat was given no deltas.
	ErrEmptyInput = errors.New("calibrate: no frequency deltas")
	// ErrNoRepeat indicates the running total never revisits a value.
	ErrNoRepeat = errors.New("calibrate: no frequency is reached twice")
)

// Sum returns the frequency reached after applying every delta once.
func Sum(deltas []int) int {
	total := 0
	for _, d := range deltas {
		total += d
	}

	return total
}

// FirstRepeat returns the first running total reached twice while cycling
// through deltas. The starting frequency 0 counts as already reached.
//
// After the first pass every later pass shifts all partial sums by the same
// drift, so once the shift exceeds the spread of the first pass no new
// collision is possible. That bounds the number of passes.
func FirstRepeat(deltas []int) (int, error) {
	if len(deltas) == 0 {
		return 0, ErrEmptyInput
	}

	seen := map[int]struct{}{0: {}}
	total, low, high := 0, 0, 0
	for _, d := range deltas {
		total += d
		if _, ok := seen[total]; ok {
			return total, nil
		}
		seen[total] = struct{}{}
		low, high = min(low, total), max(high, total)
	}

	// a zero drift would have returned 0 on the last delta above
	drift := total
	if drift < 0 {
		drift = -drift
	}
	passes := (high-low)/drift + 1
	for p := 0; p < passes; p++ {
		for _, d := range deltas {
			total += d
			if _, ok := seen[total]; ok {
				return total, nil
			}
			seen[total] = struct{}{}
		}
	}

	return 0, ErrNoRepeat
}
