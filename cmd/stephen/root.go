package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "stephen",
	Short: "Decide word-problem queries over a finitely presented semigroup or monoid",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "raise the stderr log level so --report-interval progress is shown")
	rootCmd.AddCommand(runCmd, acceptsCmd, factorCmd, listCmd)
}

// newLogger returns a logrus.Logger configured for this invocation:
// text output to stderr, level raised to Debug under --verbose.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}
