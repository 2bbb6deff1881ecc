package schedule

import (
	"maps"
	"slices"
	"time"
)

// Record maps each guard ID to every nap it took, in chronological order.
// A guard that started a shift but never slept maps to an empty slice.
type Record map[uint32][]Interval

// Build sorts a copy of events and folds them into a Record.
//
// The scan keeps the current guard and a pending fall-asleep event:
//   - ShiftStart switches guard and drops any pending nap.
//   - FallAsleep is remembered unless a nap is already pending.
//   - WakeUp closes the pending nap as an Interval for the current guard.
//
// Events before the first ShiftStart, and WakeUp without a pending nap,
// are ignored.
func Build(events []Event) Record {
	sorted := slices.Clone(events)
	SortEvents(sorted)

	rec := make(Record)
	var (
		guard    uint32
		onShift  bool
		asleepAt time.Time
		asleep   bool
	)
	for _, ev := range sorted {
		switch ev.Kind {
		case ShiftStart:
			guard, onShift, asleep = ev.Guard, true, false
			if _, ok := rec[guard]; !ok {
				rec[guard] = []Interval{}
			}
		case FallAsleep:
			if onShift && !asleep {
				asleepAt, asleep = ev.Time, true
			}
		case WakeUp:
			if onShift && asleep {
				rec[guard] = append(rec[guard], nap(asleepAt, ev.Time))
				asleep = false
			}
		}
	}

	return rec
}

// nap converts a fall-asleep/wake-up pair into minute offsets within the
// midnight hour anchored on the fall-asleep event.
func nap(from, to time.Time) Interval {
	midnight := midnightOf(from)

	return Interval{Start: minuteIn(midnight, from), End: minuteIn(midnight, to)}
}

// midnightOf returns 00:00 of t's date, or of the next day when t is at or
// after noon.
func midnightOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() >= 12 {
		day = day.AddDate(0, 0, 1)
	}

	return day
}

// minuteIn clamps t into [midnight, midnight+1h] and returns its offset in
// whole minutes, 0..60.
func minuteIn(midnight, t time.Time) int {
	d := t.Sub(midnight)
	switch {
	case d < 0:
		return 0
	case d > time.Hour:
		return Minutes
	default:
		return int(d / time.Minute)
	}
}

// Guards returns the guard IDs in ascending order.
func (r Record) Guards() []uint32 {
	return slices.Sorted(maps.Keys(r))
}

// MinutesAsleep returns the total length of every nap of guard id.
func (r Record) MinutesAsleep(id uint32) int {
	total := 0
	for _, iv := range r[id] {
		total += iv.Len()
	}

	return total
}

// Histogram counts, per minute, how many of guard id's naps cover it.
// Complexity: O(60·k) for k naps.
func (r Record) Histogram(id uint32) Histogram {
	var h Histogram
	for m := range h {
		for _, iv := range r[id] {
			if iv.Contains(m) {
				h[m]++
			}
		}
	}

	return h
}

// Max returns the minute with the highest count; the earliest minute wins
// ties, so an all-zero histogram yields (0, 0).
func (h Histogram) Max() (minute, count int) {
	for m, c := range h {
		if c > count {
			minute, count = m, c
		}
	}

	return minute, count
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}

	return total
}
