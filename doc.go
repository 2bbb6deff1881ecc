// Package aoc2018 collects small, self-contained solvers for the first days
// of Advent of Code 2018.
//
// Every puzzle follows the same shape: parse lines of text into a small
// model, run a short algorithm over it, print one scalar answer.
//
// Under the hood the work is split into one package per puzzle:
//
//	calibrate/ day 1: frequency deltas, running sum and first repeat
//	boxid/     day 2: letter-count checksum, IDs one letter apart
//	claim/     day 3: rectangle claims, pairwise overlap, contested squares
//	schedule/  day 4: guard event log, midnight-hour naps, minute histograms
//	lines/     reading input files and parsing integer lines
//	puzzle/    registry mapping "03b" style keys to solvers
//
// Quick ASCII example (day 3):
//
//	    1 1 1 1 . .
//	    1 1 X X 2 2      X = contested square
//	    1 1 X X 2 2
//	    . . 2 2 2 2
//
// Run a solver with the command in cmd/aoc2018:
//
//	go run ./cmd/aoc2018 run 03a --input inputs/03/input.txt
package aoc2018
