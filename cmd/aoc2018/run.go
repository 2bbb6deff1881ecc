package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/aoc2018/internal/config"
	"github.com/katalvlaran/aoc2018/internal/log"
	"github.com/katalvlaran/aoc2018/lines"
	"github.com/katalvlaran/aoc2018/puzzle"
	"github.com/spf13/cobra"
)

func runCmd(envFile *string) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "run <puzzle>",
		Short: "Solve one puzzle, e.g. run 03b",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := log.FromConfig(cmd.ErrOrStderr(), cfg)

			key := args[0]
			solve, err := puzzle.Lookup(key)
			if err != nil {
				return err
			}
			path := input
			if path == "" {
				path = cfg.InputPath(puzzle.Day(key))
			}

			logger.Debug("reading input", "puzzle", key, "path", path)
			in, err := lines.ReadFile(path)
			if err != nil {
				return err
			}

			start := time.Now()
			answer, err := solve(in)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			logger.Info("solved", "puzzle", key, "lines", len(in), "elapsed", time.Since(start))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (default <AOC_INPUT_DIR>/<day>/input.txt)")

	return cmd
}
