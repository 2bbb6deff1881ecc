// Package boxid inspects warehouse box IDs: a letter-frequency checksum and
// the search for two IDs that differ by exactly one character.
package boxid

import "errors"

// ErrNoMatch indicates no two IDs differ in exactly one position.
var ErrNoMatch = errors.New("boxid: no pair of IDs differs by exactly one letter")

// Checksum multiplies the number of IDs containing some letter exactly twice
// by the number of IDs containing some letter exactly three times.
// An ID may count towards both factors.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		counts := make(map[rune]int, len(id))
		for _, r := range id {
			counts[r]++
		}
		has2, has3 := false, false
		for _, n := range counts {
			has2 = has2 || n == 2
			has3 = has3 || n == 3
		}
		if has2 {
			twos++
		}
		if has3 {
			threes++
		}
	}

	return twos * threes
}

// CommonLetters scans ids in order and, for the first ID that differs from an
// earlier ID of the same length in exactly one position, returns the letters
// the two share. Complexity: O(n²·L).
func CommonLetters(ids []string) (string, error) {
	seen := make([][]rune, 0, len(ids))
	for _, id := range ids {
		cur := []rune(id)
		for _, prev := range seen {
			if at := singleDiff(cur, prev); at >= 0 {
				return string(cur[:at]) + string(cur[at+1:]), nil
			}
		}
		seen = append(seen, cur)
	}

	return "", ErrNoMatch
}

// singleDiff returns the only index where a and b differ, or -1 when they
// differ in length, in zero positions or in more than one.
func singleDiff(a, b []rune) int {
	if len(a) != len(b) {
		return -1
	}
	at := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if at >= 0 {
			return -1
		}
		at = i
	}

	return at
}
