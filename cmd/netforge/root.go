package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "netforge",
		Short:        "Generate random networks and summarize their structure",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generator events to stderr")

	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}
	root.AddCommand(newGenerateCmd(logger), newModelsCmd())

	return root
}

// newLogger returns a text logger on w; Debug when verbose, Warn otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
