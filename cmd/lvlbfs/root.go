package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	workers int
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lvlbfs",
		Short:         "Hybrid direction-optimizing parallel BFS harness",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().IntVar(&flags.workers, "workers", 0,
		"worker goroutines (0 = LVLBFS_WORKERS env or GOMAXPROCS)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"emit kernel progress records (every 10th level)")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newBenchCmd(flags))

	return cmd
}

// logger builds the harness logger; debug level when --verbose is set.
func (f *rootFlags) logger() *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
