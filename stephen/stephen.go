// Package stephen implements Stephen's procedure: given a presentation and
// a word, it completes a word graph whose accept state answers membership
// and left-factor queries for the class of that word in the presented
// semigroup or monoid, without ever materialising the (possibly infinite)
// Cayley graph.
//
// The engine runs two closure rules to a fixed point — definition (extend
// the graph to realise a word-walk) and relation (force every rule's two
// sides to end at the same node from every active node) — deferring every
// node identification the relation rule discovers to an explicit
// coincidence worklist, per spec.md §9's "worklist as value, not control
// flow" design note.
package stephen

import (
	"context"
	"fmt"
	"time"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/nodemgr"
	"github.com/wordproblem/stephen/report"
	"github.com/wordproblem/stephen/wgraph"
)

// Presentation is the minimal view Stephen needs of a presentation. Both
// *presentation.Presentation and *presentation.InversePresentation satisfy
// it; Stephen depends on this interface, never on the concrete type, so it
// can treat the two kinds polymorphically (spec.md §9's "polymorphism over
// presentation kind" note).
type Presentation interface {
	Alphabet() []letters.Letter
	ContainsEmptyWord() bool
	InAlphabet(l letters.Letter) bool
	RulePairs() [][2]letters.Word
	Validate() error
}

// invertible is additionally satisfied by *presentation.InversePresentation.
// Stephen type-switches on this to discover whether it is completing an
// inverse presentation, rather than taking a separate constructor per kind.
type invertible interface {
	Presentation
	InverseOf(l letters.Letter) (letters.Letter, bool)
}

// state is the completion engine's lifecycle, spec.md §4.5's state table:
// Empty -> Ready -> Seeded -> Running <-> Paused -> Finished.
type state int

const (
	stateEmpty state = iota
	stateReady
	stateSeeded
	stateRunning
	statePaused
	stateFinished
)

// workItem is one pending relation-closure obligation: force rule
// rules[rule] to agree when walked from node.
type workItem struct {
	node wgraph.Node
	rule int
}

// Option configures a Stephen instance at construction time.
type Option func(*Stephen)

// WithStandardiseDisabled skips the default post-Run relabelling into
// canonical BFS order (spec.md §4.5's standardisation step), leaving node
// ids exactly where the relation-closure loop left them. Useful for
// inspecting the raw, unrenumbered graph.
func WithStandardiseDisabled() Option {
	return func(s *Stephen) { s.standardiseOnFinish = false }
}

// WithReportSink configures progress reporting: every interval processed
// work items (relation items and coincidences combined), sink.Progress is
// called with a snapshot. An interval <= 0 disables reporting regardless
// of sink.
func WithReportSink(sink report.Sink, interval int) Option {
	return func(s *Stephen) {
		s.sink = sink
		s.reportInterval = interval
	}
}

// Stephen is one instance of the completion engine, scoped to a single
// presentation and (after SetWord) a single word.
type Stephen struct {
	pres Presentation
	inv  invertible // non-nil iff pres is an inverse presentation
	word letters.Word

	rules [][2]letters.Word

	graph *wgraph.GraphWithSources
	nodes *nodemgr.Manager
	accept wgraph.Node

	st state

	relationQueue    []workItem
	coincidenceQueue [][2]wgraph.Node

	walkedInitial bool

	standardiseOnFinish bool
	reportInterval      int
	sink                report.Sink
	workItemsDone       int
}

// Init constructs a Stephen instance for p, validating p first. Returns
// ErrUninitialised-free: any validation failure is returned verbatim from
// p.Validate, wrapped for context.
func Init(p Presentation, opts ...Option) (*Stephen, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("stephen: invalid presentation: %w", err)
	}

	s := &Stephen{
		pres:                p,
		rules:               p.RulePairs(),
		sink:                report.NoopSink(),
		accept:              wgraph.Undefined,
		st:                  stateReady,
		standardiseOnFinish: true,
	}
	if iv, ok := p.(invertible); ok {
		s.inv = iv
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// outDegree returns the graph out-degree this presentation needs: |A| for
// a plain presentation, 2|A| for an inverse presentation (the upper half
// carries the complementary return edges the involution discipline needs;
// see DESIGN.md's "Inverse-presentation involution enforcement").
func (s *Stephen) outDegree() int {
	n := len(s.pres.Alphabet())
	if s.inv != nil {
		return 2 * n
	}

	return n
}

// SetWord seeds the instance with w, resetting any previous run. Returns
// ErrLetterOutOfRange if w contains a letter not in the presentation's
// alphabet.
func (s *Stephen) SetWord(w letters.Word) error {
	for _, l := range w {
		if !s.pres.InAlphabet(l) {
			return fmt.Errorf("%w: %d", ErrLetterOutOfRange, l)
		}
	}
	s.word = letters.Clone(w)
	s.nodes = nodemgr.New()
	s.nodes.NewActiveNode() // always allocates node 0
	s.graph = wgraph.NewWithSources(1, s.outDegree())
	s.accept = wgraph.Undefined
	s.relationQueue = nil
	s.coincidenceQueue = nil
	s.walkedInitial = false
	s.workItemsDone = 0
	s.enqueueAllRules(wgraph.Node(0))
	s.st = stateSeeded

	return nil
}

// Run drives the engine to its fixed point, or until ctx is cancelled.
// If ctx is cancelled mid-run, Run returns nil with the instance left in
// state Paused; a later call to Run with a fresh context resumes exactly
// where the previous call left off (spec.md §9's run_for/run_until
// resumption note; both queues are fields, not call-stack state). A
// non-nil error other than context cancellation leaves the instance
// permanently unusable (spec.md §7: inverse inconsistency is fatal).
func (s *Stephen) Run(ctx context.Context) error {
	switch s.st {
	case stateFinished:
		return nil
	case stateSeeded, statePaused:
		// proceed
	default:
		return ErrUninitialised
	}

	if !s.walkedInitial {
		accept, err := s.completePath(wgraph.Node(0), s.word)
		if err != nil {
			return err
		}
		s.accept = accept
		s.walkedInitial = true
	}
	s.st = stateRunning

	for {
		if err := ctx.Err(); err != nil {
			s.st = statePaused
			return nil
		}

		if len(s.coincidenceQueue) > 0 {
			if err := s.processCoincidence(); err != nil {
				return err
			}
			s.workItemsDone++
			s.maybeReport()
			continue
		}

		if len(s.relationQueue) == 0 {
			break
		}

		item := s.relationQueue[0]
		s.relationQueue = s.relationQueue[1:]
		if !s.nodes.IsActive(nodemgr.Node(item.node)) {
			// item.node was absorbed by a coincidence merge since it was
			// enqueued. No closure is lost: the surviving node it was
			// merged into already carries its own obligation for every
			// rule from the moment it was itself defined.
			continue
		}
		if err := s.processRelationItem(item); err != nil {
			return err
		}
		s.workItemsDone++
		s.maybeReport()
	}

	// The word was walked once before the loop started, possibly through
	// nodes later merged away; re-walk it now that the graph is closed so
	// accept names the current survivor.
	s.accept = s.walkReadOnly(wgraph.Node(0), s.word)
	s.st = stateFinished
	if s.standardiseOnFinish {
		s.standardise()
	}

	return nil
}

// maybeReport emits a progress snapshot every reportInterval processed
// work items, if a sink was configured.
func (s *Stephen) maybeReport() {
	if s.reportInterval <= 0 {
		return
	}
	if s.workItemsDone%s.reportInterval != 0 {
		return
	}
	s.sink.Progress(report.Stats{
		NodesActive:      s.nodes.NumberOfNodesActive(),
		NodesDefined:     s.nodes.NumberOfNodesDefined(),
		RelationQueueLen: len(s.relationQueue),
		CoincidenceQueue: len(s.coincidenceQueue),
	})
}

// RunFor is Run bounded by a duration rather than a caller-supplied
// context: it runs the fixed point for at most d before pausing, the same
// resumable-Paused state Run leaves behind on cancellation.
func (s *Stephen) RunFor(ctx context.Context, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	return s.Run(ctx)
}

// enqueueAllRules schedules n against every rule, the obligation every
// newly defined node picks up immediately (spec.md §4.5: "a node is
// enqueued against every rule at the moment it is defined").
func (s *Stephen) enqueueAllRules(n wgraph.Node) {
	for i := range s.rules {
		s.relationQueue = append(s.relationQueue, workItem{node: n, rule: i})
	}
}
