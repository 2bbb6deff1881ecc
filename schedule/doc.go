// Package schedule reconstructs guard sleep schedules from a log of
// timestamped events and finds the guard/minute pair that is most often
// asleep.
//
// What:
//
//   - ParseEvent reads one log line: a shift start, falling asleep or waking up.
//   - Build sorts the events and turns fall-asleep/wake-up pairs into half-open
//     minute intervals per guard.
//   - Histogram counts, for each minute 0..59, how many intervals cover it.
//   - MostMinutesAsleep and MostFrequentMinute are the two ways of choosing
//     the sleepiest guard.
//
// Midnight hour:
//
//	Guards only sleep during the midnight hour. The window is anchored on the
//	date of the fall-asleep event (or the next day when that event happens at
//	noon or later) and both ends of a nap are clamped into 00:00..01:00 before
//	being turned into minute offsets 0..60.
//
// Ties:
//
//	Every maximum is resolved deterministically: the smallest minute wins
//	inside one histogram and the smallest guard ID wins across guards.
//
// Errors:
//
//   - ErrFormat: a line does not match any of the three event shapes.
//   - ErrNumber: a guard ID does not fit in uint32.
//   - ErrNoGuards: the log starts no shift at all.
//   - ErrNoSleep: no guard is ever asleep.
package schedule
