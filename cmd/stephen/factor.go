package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordproblem/stephen/stephen"
)

var (
	factorPresentation string
	factorWord         string
	factorOther        string
	factorTimeout      time.Duration
)

var factorCmd = &cobra.Command{
	Use:   "factor",
	Short: "Report whether --other is a left factor of --word under the presentation",
	RunE:  runFactor,
}

func init() {
	factorCmd.Flags().StringVar(&factorPresentation, "presentation", "", "path to an HCL presentation document (required)")
	factorCmd.Flags().StringVar(&factorWord, "word", "", "the seed word, as alphabet symbols")
	factorCmd.Flags().StringVar(&factorOther, "other", "", "the candidate left factor, as alphabet symbols")
	factorCmd.Flags().DurationVar(&factorTimeout, "timeout", 0, "stop and report Paused if completion has not converged by then (0 = no limit)")
	_ = factorCmd.MarkFlagRequired("presentation")
	_ = factorCmd.MarkFlagRequired("other")
}

func runFactor(cmd *cobra.Command, args []string) error {
	s, coder, err := loadAndComplete(factorPresentation, factorWord, factorTimeout, 0)
	if err != nil {
		return err
	}

	other, err := codeWord(coder, factorOther)
	if err != nil {
		return err
	}

	ok, err := stephen.IsLeftFactor(s, other)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)

	return nil
}
