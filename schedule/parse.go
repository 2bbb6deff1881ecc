package schedule

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// timeLayout is the "[1518-11-01 00:05]" stamp without brackets.
const timeLayout = "2006-01-02 15:04"

// eventPattern matches the three log shapes:
//
//	[1518-11-01 00:00] Guard #10 begins shift
//	[1518-11-01 00:05] falls asleep
//	[1518-11-01 00:25] wakes up
var eventPattern = regexp.MustCompile(
	`^\[(?P<time>\d{4}-\d{2}-\d{2} \d{2}:\d{2})\] ` +
		`(?:Guard #(?P<id>\d+) begins shift|(?P<sleep>falls asleep)|(?P<wake>wakes up))$`,
)

var (
	timeIdx  = eventPattern.SubexpIndex("time")
	idIdx    = eventPattern.SubexpIndex("id")
	sleepIdx = eventPattern.SubexpIndex("sleep")
	wakeIdx  = eventPattern.SubexpIndex("wake")
)

// ParseEvent converts one log line into an Event.
//
// Errors (as *ParseError):
//   - ErrFormat if the shape is unknown or the timestamp is not a real date.
//   - ErrNumber if the guard ID overflows uint32.
func ParseEvent(line string) (Event, error) {
	m := eventPattern.FindStringSubmatch(line)
	if m == nil {
		return Event{}, &ParseError{Line: line, Kind: ErrFormat}
	}
	ts, err := time.Parse(timeLayout, m[timeIdx])
	if err != nil {
		return Event{}, &ParseError{Line: line, Kind: ErrFormat, Err: err}
	}

	ev := Event{Time: ts}
	switch {
	case m[idIdx] != "":
		id, err := strconv.ParseUint(m[idIdx], 10, 32)
		if err != nil {
			return Event{}, &ParseError{Line: line, Kind: ErrNumber, Err: err}
		}
		ev.Kind, ev.Guard = ShiftStart, uint32(id)
	case m[sleepIdx] != "":
		ev.Kind = FallAsleep
	case m[wakeIdx] != "":
		ev.Kind = WakeUp
	}

	return ev, nil
}

// ParseEvents parses every line, stopping at the first failure.
// The returned error names the 1-based line number.
func ParseEvents(in []string) ([]Event, error) {
	events := make([]Event, 0, len(in))
	for i, line := range in {
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		events = append(events, ev)
	}

	return events, nil
}

// SortEvents orders events chronologically in place. Events with equal
// timestamps keep their input order.
func SortEvents(events []Event) {
	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Time.Compare(b.Time)
	})
}
