package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/paths"
	"github.com/wordproblem/stephen/wgraph"
)

var (
	listPresentation string
	listWord         string
	listTimeout      time.Duration
	listMin          int
	listMax          int
	listAccepted     bool
	listFactors      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Stream words in shortlex order that are accepted, or that are left factors, of --word",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPresentation, "presentation", "", "path to an HCL presentation document (required)")
	listCmd.Flags().StringVar(&listWord, "word", "", "the seed word, as alphabet symbols")
	listCmd.Flags().DurationVar(&listTimeout, "timeout", 0, "stop and report Paused if completion has not converged by then (0 = no limit)")
	listCmd.Flags().IntVar(&listMin, "min", 0, "minimum word length to enumerate")
	listCmd.Flags().IntVar(&listMax, "max", 11, "exclusive upper bound on word length to enumerate (words of length up to max-1 are listed)")
	listCmd.Flags().BoolVar(&listAccepted, "accepted", false, "enumerate words equivalent to --word")
	listCmd.Flags().BoolVar(&listFactors, "factors", false, "enumerate left factors of any word equivalent to --word")
	_ = listCmd.MarkFlagRequired("presentation")
}

// boundedSource restricts paths.WordsBetween to a word graph's ordinary
// alphabet labels, never the complementary upper half an inverse
// presentation's graph carries (see DESIGN.md's "Inverse-presentation
// involution enforcement") — those labels never name a real alphabet
// symbol a coder can decode back.
type boundedSource struct {
	g *wgraph.GraphWithSources
	n int
}

func (b boundedSource) Neighbor(n wgraph.Node, a wgraph.Label) wgraph.Node { return b.g.Neighbor(n, a) }
func (b boundedSource) OutDegree() int                                    { return b.n }

func runList(cmd *cobra.Command, args []string) error {
	if listAccepted == listFactors {
		return fmt.Errorf("stephen: specify exactly one of --accepted or --factors")
	}

	s, coder, err := loadAndComplete(listPresentation, listWord, listTimeout, 0)
	if err != nil {
		return err
	}

	accept, err := s.AcceptState()
	if err != nil {
		return err
	}

	var to *wgraph.Node
	if listAccepted {
		to = &accept
	}

	src := boundedSource{g: s.Graph(), n: coder.Len()}
	for w := range paths.WordsBetween(src, wgraph.Node(0), to, listMin, listMax) {
		fmt.Fprintln(cmd.OutOrStdout(), renderWord(coder, w))
	}

	return nil
}

func renderWord(coder *letters.Coder, w letters.Word) string {
	if len(w) == 0 {
		return "ε"
	}
	symbols := make([]string, len(w))
	for i, l := range w {
		sym, ok := coder.Symbol(l)
		if !ok {
			sym = fmt.Sprintf("<%d>", l)
		}
		symbols[i] = sym
	}

	return strings.Join(symbols, "")
}
