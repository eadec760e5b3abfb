package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordproblem/stephen/stephen"
)

var (
	acceptsPresentation string
	acceptsWord         string
	acceptsOther        string
	acceptsTimeout      time.Duration
)

var acceptsCmd = &cobra.Command{
	Use:   "accepts",
	Short: "Report whether --other is equivalent to --word under the presentation",
	RunE:  runAccepts,
}

func init() {
	acceptsCmd.Flags().StringVar(&acceptsPresentation, "presentation", "", "path to an HCL presentation document (required)")
	acceptsCmd.Flags().StringVar(&acceptsWord, "word", "", "the seed word, as alphabet symbols")
	acceptsCmd.Flags().StringVar(&acceptsOther, "other", "", "the word to test for equivalence, as alphabet symbols")
	acceptsCmd.Flags().DurationVar(&acceptsTimeout, "timeout", 0, "stop and report Paused if completion has not converged by then (0 = no limit)")
	_ = acceptsCmd.MarkFlagRequired("presentation")
	_ = acceptsCmd.MarkFlagRequired("other")
}

func runAccepts(cmd *cobra.Command, args []string) error {
	s, coder, err := loadAndComplete(acceptsPresentation, acceptsWord, acceptsTimeout, 0)
	if err != nil {
		return err
	}

	other, err := codeWord(coder, acceptsOther)
	if err != nil {
		return err
	}

	ok, err := stephen.Accepts(s, other)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)

	return nil
}
