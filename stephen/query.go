package stephen

import (
	"fmt"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/wgraph"
)

// AcceptState returns the node a completed run's seed word ends at. Every
// word equivalent to the seed word under the presentation's rules also
// ends there (spec.md §4.6).
func (s *Stephen) AcceptState() (wgraph.Node, error) {
	if s.st == stateEmpty || s.st == stateReady {
		return wgraph.Undefined, ErrUninitialised
	}
	if s.st != stateFinished {
		return wgraph.Undefined, ErrNotFinished
	}

	return s.accept, nil
}

// Graph exposes the finished word graph for callers that need to walk it
// directly, such as paths.WordsBetween. Returns nil if the instance has
// not finished a run.
func (s *Stephen) Graph() *wgraph.GraphWithSources {
	if s.st != stateFinished {
		return nil
	}

	return s.graph
}

// walk follows w from node 0 using only existing edges, returning
// wgraph.Undefined the moment an edge is missing. Shared by Accepts and
// IsLeftFactor, both of which only make sense once completion has
// converged and so never need to define an edge.
func (s *Stephen) walk(w letters.Word) (wgraph.Node, error) {
	if s.st == stateEmpty || s.st == stateReady {
		return wgraph.Undefined, ErrUninitialised
	}
	if s.st != stateFinished {
		return wgraph.Undefined, ErrNotFinished
	}
	cur := wgraph.Node(0)
	for _, l := range w {
		if !s.pres.InAlphabet(l) {
			return wgraph.Undefined, fmt.Errorf("%w: %d", ErrLetterOutOfRange, l)
		}
		next := s.graph.Neighbor(cur, wgraph.Label(l))
		if next == wgraph.Undefined {
			return wgraph.Undefined, nil
		}
		cur = next
	}

	return cur, nil
}

// Accepts reports whether w is equivalent to s's seed word under the
// presentation: whether walking w from node 0 lands on the accept state.
func Accepts(s *Stephen, w letters.Word) (bool, error) {
	accept, err := s.AcceptState()
	if err != nil {
		return false, err
	}
	end, err := s.walk(w)
	if err != nil {
		return false, err
	}

	return end != wgraph.Undefined && end == accept, nil
}

// IsLeftFactor reports whether w is a left factor of (some word equivalent
// to) s's seed word: whether walking w from node 0 stays defined the whole
// way, regardless of which node it ends at.
func IsLeftFactor(s *Stephen, w letters.Word) (bool, error) {
	end, err := s.walk(w)
	if err != nil {
		return false, err
	}

	return end != wgraph.Undefined, nil
}
