package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by subcommands for one invocation.
type app struct {
	verbose  bool
	logPath  string
	log      *slog.Logger
	closeLog func() error
}

// finish releases the log file, if any. Subcommands defer it so the file
// is closed on error paths too.
func (a *app) finish() {
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
}

// newRootCmd assembles the command tree. A fresh tree per call keeps flag
// state from leaking between invocations (and tests).
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "acotour",
		Short: "Ant Colony Optimization tours for TSP",
		Long: `acotour constructs tours over a TSP instance with a single ACO ant.
Each step the ant favours edges with more pheromone and shorter length, then
optionally deposits pheromone proportional to 1/tour length.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			logger, closer, err := newLogger(cmd.ErrOrStderr(), level, a.logPath)
			if err != nil {
				return err
			}
			a.log, a.closeLog = logger, closer
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.logPath, "log-file", "", "also write logs to this file")

	root.AddCommand(newTourCmd(a), newGenerateCmd(a))

	return root
}
