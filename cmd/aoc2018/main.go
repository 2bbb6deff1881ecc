// Command aoc2018 runs one registered puzzle solver against an input file
// and prints its answer on a single line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "aoc2018",
		Short:         "Advent of Code 2018 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file with AOC_* settings")

	cmd.AddCommand(runCmd(&envFile))
	cmd.AddCommand(listCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}
