// Package paths enumerates words labelling paths through a word graph, in
// shortlex order. spec.md declares this a "black-box utility" outside the
// core's own scope (§1, §6); it is supplied here, behind a narrow
// interface, so the engine's query surface (accepted words, left factors)
// is actually exercisable end-to-end.
package paths

import (
	"iter"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/wgraph"
)

// Source is the minimal read-only view WordsBetween needs of a word
// graph. This package reads graphs only through this interface, never
// through a concrete graph type, per spec.md §6's instruction to treat
// the enumerator as an external collaborator.
type Source interface {
	Neighbor(n wgraph.Node, a wgraph.Label) wgraph.Node
	OutDegree() int
}

// partial is one in-flight candidate during the breadth-first enumeration:
// the node reached so far and the word of labels that reached it.
type partial struct {
	node wgraph.Node
	word letters.Word
}

// WordsBetween lazily enumerates, in shortlex order, every word w with
// |w| in the half-open interval [min, max) such that walking w from
// `from` in g ends at `to` (or, if to is nil, ends anywhere — i.e. every
// word readable from `from` of a length in range). Each call to the
// returned iterator starts a fresh breadth-first enumeration; the
// sequence is restartable because it holds no state of its own, only
// what the range-over-func body captures per invocation.
//
// Grounded on algorithms.BFS's queue-of-partial-paths shape in
// algorithms/bfs.go, generalised from "visit a node once" to "enumerate
// every path", which is why nodes are revisited (once per distinct
// labelling) rather than marked visited.
func WordsBetween(g Source, from wgraph.Node, to *wgraph.Node, min, max int) iter.Seq[letters.Word] {
	return func(yield func(letters.Word) bool) {
		if max <= 0 || min >= max {
			return
		}
		queue := []partial{{node: from, word: letters.Word{}}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			if len(cur.word) >= min && len(cur.word) < max && (to == nil || cur.node == *to) {
				if !yield(cur.word) {
					return
				}
			}
			if len(cur.word)+1 >= max {
				continue
			}
			for a := 0; a < g.OutDegree(); a++ {
				next := g.Neighbor(cur.node, wgraph.Label(a))
				if next == wgraph.Undefined {
					continue
				}
				queue = append(queue, partial{
					node: next,
					word: letters.Concat(cur.word, letters.Word{letters.Letter(a)}),
				})
			}
		}
	}
}

// NumberOfWordsBetween counts the words WordsBetween would yield, without
// materialising them. Mirrors stephen::number_of_words_accepted /
// number_of_left_factors in stephen.hpp, which are themselves thin
// counting wrappers around the same enumeration.
func NumberOfWordsBetween(g Source, from wgraph.Node, to *wgraph.Node, min, max int) int {
	n := 0
	for range WordsBetween(g, from, to, min, max) {
		n++
	}

	return n
}
