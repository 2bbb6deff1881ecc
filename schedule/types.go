package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for parsing and aggregation.
var (
	// ErrFormat indicates a line matches none of the event shapes.
	ErrFormat = errors.New("schedule: wrong line format")
	// ErrNumber indicates a guard ID is out of range for uint32.
	ErrNumber = errors.New("schedule: number out of range")
	// ErrNoGuards indicates the record holds no guard at all.
	ErrNoGuards = errors.New("schedule: no guard begins a shift")
	// ErrNoSleep indicates no guard was ever recorded asleep.
	ErrNoSleep = errors.New("schedule: no guard ever falls asleep")
)

// Kind tags what happened at an event's timestamp.
type Kind int

const (
	// ShiftStart is "Guard #<id> begins shift".
	ShiftStart Kind = iota
	// FallAsleep is "falls asleep".
	FallAsleep
	// WakeUp is "wakes up".
	WakeUp
)

func (k Kind) String() string {
	switch k {
	case ShiftStart:
		return "begins shift"
	case FallAsleep:
		return "falls asleep"
	case WakeUp:
		return "wakes up"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one log entry. Guard is only meaningful for ShiftStart.
// Time has minute resolution and is expressed in UTC.
type Event struct {
	Time  time.Time
	Kind  Kind
	Guard uint32
}

// Interval is a half-open minute range [Start, End) within the midnight hour.
type Interval struct {
	Start, End int
}

// Contains reports whether minute m lies in [Start, End).
func (iv Interval) Contains(m int) bool { return iv.Start <= m && m < iv.End }

// Len returns the number of minutes covered.
func (iv Interval) Len() int { return max(iv.End-iv.Start, 0) }

// Minutes is the number of slots in a Histogram.
const Minutes = 60

// Histogram counts, for each minute of the midnight hour, how many sleep
// intervals cover it.
type Histogram [Minutes]int

// Answer identifies a guard, its chosen minute and how often it slept then.
type Answer struct {
	Guard  uint32
	Minute int
	Count  int
}

// Product returns Guard × Minute, the puzzle's answer format.
func (a Answer) Product() int { return int(a.Guard) * a.Minute }

// ParseError describes why a single log line was rejected.
type ParseError struct {
	Line string
	Kind error
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", e.Kind, e.Line)
	}

	return fmt.Sprintf("%v: %q: %v", e.Kind, e.Line, e.Err)
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
