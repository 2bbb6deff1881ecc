package puzzle

import (
	"strconv"

	"github.com/katalvlaran/aoc2018/boxid"
	"github.com/katalvlaran/aoc2018/calibrate"
	"github.com/katalvlaran/aoc2018/claim"
	"github.com/katalvlaran/aoc2018/lines"
	"github.com/katalvlaran/aoc2018/schedule"
)

func init() {
	Register("01a", day01a)
	Register("01b", day01b)
	Register("02a", day02a)
	Register("02b", day02b)
	Register("03a", day03a)
	Register("03b", day03b)
	Register("04a", day04a)
	Register("04b", day04b)
}

// day01a: resulting frequency after one pass over the deltas.
func day01a(in []string) (string, error) {
	d, err := lines.Parse[int](in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(calibrate.Sum(d)), nil
}

// day01b: first frequency reached twice.
func day01b(in []string) (string, error) {
	d, err := lines.Parse[int](in)
	if err != nil {
		return "", err
	}
	f, err := calibrate.FirstRepeat(d)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(f), nil
}

func day02a(in []string) (string, error) {
	return strconv.Itoa(boxid.Checksum(in)), nil
}

func day02b(in []string) (string, error) {
	return boxid.CommonLetters(in)
}

// day03a: squares claimed by two or more elves.
func day03a(in []string) (string, error) {
	claims, err := claim.ParseAll(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(claim.ContestedArea(claims)), nil
}

// day03b: the only claim that overlaps nothing.
func day03b(in []string) (string, error) {
	claims, err := claim.ParseAll(in)
	if err != nil {
		return "", err
	}
	id, err := claim.UniqueClaim(claims)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(uint64(id), 10), nil
}

func day04a(in []string) (string, error) {
	return sleepiest(in, schedule.MostMinutesAsleep)
}

func day04b(in []string) (string, error) {
	return sleepiest(in, schedule.MostFrequentMinute)
}

// sleepiest builds the guard record and applies one selection strategy.
func sleepiest(in []string, pick func(schedule.Record) (schedule.Answer, error)) (string, error) {
	events, err := schedule.ParseEvents(in)
	if err != nil {
		return "", err
	}
	ans, err := pick(schedule.Build(events))
	if err != nil {
		return "", err
	}

	return strconv.Itoa(ans.Product()), nil
}
