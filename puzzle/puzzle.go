// Package puzzle keeps a registry of solvers keyed by day and part ("03b").
// Each solver turns the lines of one input into a single printable answer.
package puzzle

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownPuzzle indicates Lookup was asked for a key nobody registered.
var ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

// Solver computes one answer from the lines of an input file.
type Solver func(lines []string) (string, error)

var registry = map[string]Solver{}

// Register adds s under key. It is meant to be called from init functions
// and panics on a duplicate key or a nil solver.
func Register(key string, s Solver) {
	if s == nil {
		panic("puzzle: nil solver for " + key)
	}
	if _, dup := registry[key]; dup {
		panic("puzzle: duplicate registration of " + key)
	}
	registry[key] = s
}

// Lookup returns the solver registered under key.
func Lookup(key string) (Solver, error) {
	s, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPuzzle, key)
	}

	return s, nil
}

// Keys returns every registered key in ascending order.
func Keys() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Day returns the day part of key, i.e. "03" for "03b".
func Day(key string) string {
	if n := len(key); n > 0 && (key[n-1] < '0' || key[n-1] > '9') {
		return key[:n-1]
	}

	return key
}
