// Package cli implements the reqexpect command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/getmockd/reqexpect/pkg/logging"
)

var (
	logLevel string

	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:          "reqexpect",
	Short:        "Match HTTP-style requests against expectation rules",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Output: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// Execute runs the CLI and returns the command error, if any.
func Execute() error {
	return rootCmd.Execute()
}

// Logger exposes the configured logger to commands.
func Logger() *slog.Logger {
	return logger
}
