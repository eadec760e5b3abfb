package wgraph

import (
	"fmt"

	"github.com/wordproblem/stephen/dtable"
)

// GraphWithSources extends Graph with two parallel dense tables forming,
// for every (target, label) pair, a singly-linked list of the nodes with
// an edge into that target under that label:
//
//   - firstSource(t, a): head of the chain.
//   - nextSource(s, a):  successor of s in the chain rooted at
//     firstSource(δ(s, a), a), indexed by the *source* node s.
//
// The invariant maintained after every public operation (spec.md §3) is:
// δ(s, a) = t iff s appears in the chain rooted at firstSource(t, a), no
// chain contains a node twice, and Undefined terminates every chain.
type GraphWithSources struct {
	*Graph
	firstSource *dtable.Table
	nextSource  *dtable.Table
}

// NewWithSources creates a GraphWithSources with numNodes nodes and the
// given out-degree.
// Complexity: O(numNodes*outDegree).
func NewWithSources(numNodes, outDegree int) *GraphWithSources {
	first, err := dtable.New(numNodes, outDegree)
	if err != nil {
		panic(err)
	}
	next, err := dtable.New(numNodes, outDegree)
	if err != nil {
		panic(err)
	}

	return &GraphWithSources{
		Graph:       New(numNodes, outDegree),
		firstSource: first,
		nextSource:  next,
	}
}

// FirstSource returns the head of the source chain for (t, a).
// Complexity: O(1).
func (g *GraphWithSources) FirstSource(t Node, a Label) Node {
	return Node(g.firstSource.Get(int(t), int(a)))
}

// NextSource returns the chain successor of s under label a.
// Complexity: O(1).
func (g *GraphWithSources) NextSource(s Node, a Label) Node {
	return Node(g.nextSource.Get(int(s), int(a)))
}

// addSource prepends s to the chain rooted at (t, a).
// Complexity: O(1).
func (g *GraphWithSources) addSource(t Node, a Label, s Node) {
	g.nextSource.Set(int(s), int(a), int64(g.FirstSource(t, a)))
	g.firstSource.Set(int(t), int(a), int64(s))
}

// removeSource unlinks s from the chain rooted at (t, a). Walking the
// chain is unavoidable (it is singly linked with no back-pointers), but
// amortised short: spec.md §4.2 documents this cost as "amortised small".
// Complexity: O(chain length).
func (g *GraphWithSources) removeSource(t Node, a Label, s Node) {
	if g.FirstSource(t, a) == s {
		g.firstSource.Set(int(t), int(a), int64(g.NextSource(s, a)))
		return
	}
	prev := g.FirstSource(t, a)
	for prev != Undefined {
		next := g.NextSource(prev, a)
		if next == s {
			g.nextSource.Set(int(prev), int(a), int64(g.NextSource(s, a)))
			return
		}
		prev = next
	}
}

// AddEdge sets δ(s, a) = t and records s in t's source chain. Overrides
// Graph.AddEdge so the two representations never drift apart.
// Complexity: O(1).
func (g *GraphWithSources) AddEdge(s, t Node, a Label) error {
	if err := g.Graph.AddEdge(s, t, a); err != nil {
		return err
	}
	g.addSource(t, a, s)

	return nil
}

// AddEdgeNC is the unchecked counterpart of AddEdge.
// Complexity: O(1).
func (g *GraphWithSources) AddEdgeNC(s, t Node, a Label) {
	g.Graph.AddEdgeNC(s, t, a)
	g.addSource(t, a, s)
}

// RemoveEdge clears δ(s, a) and unlinks s from the target's source chain.
// Complexity: O(chain length).
func (g *GraphWithSources) RemoveEdge(s Node, a Label) error {
	t := g.Neighbor(s, a)
	if t == Undefined {
		return ErrNoSuchEdge
	}
	g.removeSource(t, a, s)

	return g.Graph.RemoveEdge(s, a)
}

// AddNodes grows both the forward table and both source tables by k rows.
// Complexity: O((numNodes+k)*outDegree).
func (g *GraphWithSources) AddNodes(k int) {
	g.Graph.AddNodes(k)
	g.firstSource.AddRows(k)
	g.nextSource.AddRows(k)
}

// AddToOutDegree grows all three tables by k columns.
// Complexity: O(numNodes*(outDegree+k)).
func (g *GraphWithSources) AddToOutDegree(k int) {
	g.Graph.AddToOutDegree(k)
	g.firstSource.AddCols(k)
	g.nextSource.AddCols(k)
}

// ShrinkTo discards every node row from k onward in all three tables.
// Callers must ensure no edge from a surviving node targets a discarded
// one before calling this (standardisation establishes that by construction:
// k is the count of active nodes after every one of them has been
// relabelled into [0, k)).
// Complexity: O(k*outDegree).
func (g *GraphWithSources) ShrinkTo(k int) {
	if k >= g.NumberOfNodes() {
		return
	}
	g.Graph.ShrinkTo(k)
	g.firstSource.ShrinkRowsTo(k)
	g.nextSource.ShrinkRowsTo(k)
}

// IsSource reports whether d appears in the source chain of (c, a). Costly
// — intended for assertions and tests, not hot paths.
// Complexity: O(chain length).
func (g *GraphWithSources) IsSource(c, d Node, a Label) bool {
	s := g.FirstSource(c, a)
	for s != Undefined {
		if s == d {
			return true
		}
		s = g.NextSource(s, a)
	}

	return false
}

// RebuildSources scans every outgoing edge of nodes in [first, last) and
// rebuilds their contribution to the reverse chains from scratch. Intended
// for debugging and for constructing a GraphWithSources from a plain
// Graph whose forward table was populated directly.
// Complexity: O((last-first)*outDegree).
func (g *GraphWithSources) RebuildSources(first, last Node) {
	for s := first; s < last; s++ {
		for a := 0; a < g.OutDegree(); a++ {
			t := g.Neighbor(s, Label(a))
			if t != Undefined {
				g.addSource(t, Label(a), s)
			}
		}
	}
}

// SwapNodes atomically exchanges the identities of two valid nodes c and d
// in both the forward and reverse representations: every incoming edge of
// c becomes an incoming edge of d and vice versa, every outgoing edge of c
// becomes an outgoing edge of d and vice versa, and self-loops (on either
// node, or between them) are preserved.
//
// Preconditions (spec.md §4.2): c and d are both valid node ids. Violating
// this is a programmer error; in release builds the behaviour is
// undefined, matching the original's documented contract ("if c or d is
// not valid, this will fail spectacularly").
// Complexity: O(outDegree) for the outgoing rows, plus O(sum of incoming
// chain lengths at c and d) for the forward-table fixups, plus the
// O(numNodes*outDegree) rebuild of both reverse-chain tables.
func (g *GraphWithSources) SwapNodes(c, d Node) {
	if c == d {
		return
	}
	outDeg := g.OutDegree()
	chainC := make([][]Node, outDeg)
	chainD := make([][]Node, outDeg)
	for a := 0; a < outDeg; a++ {
		label := Label(a)
		for s := g.FirstSource(c, label); s != Undefined; s = g.NextSource(s, label) {
			chainC[a] = append(chainC[a], s)
		}
		for s := g.FirstSource(d, label); s != Undefined; s = g.NextSource(s, label) {
			chainD[a] = append(chainD[a], s)
		}
	}
	sigma := func(n Node) Node {
		switch n {
		case c:
			return d
		case d:
			return c
		default:
			return n
		}
	}

	// Relocate whatever each row held that had nothing to do with c or d;
	// the fixups below correct every cell that did.
	g.target.SwapRows(int(c), int(d))
	for a := 0; a < outDeg; a++ {
		for _, s := range chainC[a] {
			g.target.Set(int(sigma(s)), a, int64(d))
		}
		for _, s := range chainD[a] {
			g.target.Set(int(sigma(s)), a, int64(c))
		}
	}
	g.rebuildAllSources()
}

// RenameNode is the one-sided counterpart of SwapNodes: d is known to have
// no current edges (neither incoming nor outgoing), and after this call d
// has exactly the edges c had before the call, while c is left with none.
// Complexity: O(outDegree) plus O(sum of incoming chain lengths at c), plus
// the O(numNodes*outDegree) of the reverse-chain rebuild both this and
// SwapNodes use in place of an in-place chain splice (see DESIGN.md: this
// trades the original's O(chain length) update for a simpler, more
// obviously correct wholesale rebuild).
func (g *GraphWithSources) RenameNode(c, d Node) {
	if c == d {
		return
	}
	outDeg := g.OutDegree()
	sigma := func(n Node) Node {
		if n == c {
			return d
		}
		return n
	}
	for a := 0; a < outDeg; a++ {
		label := Label(a)
		for s := g.FirstSource(c, label); s != Undefined; s = g.NextSource(s, label) {
			g.target.Set(int(sigma(s)), a, int64(d))
		}
	}
	for a := 0; a < outDeg; a++ {
		t := g.Neighbor(c, Label(a))
		g.target.Set(int(d), a, int64(sigma(t)))
		g.target.Set(int(c), a, int64(Undefined))
	}
	g.rebuildAllSources()
}

// rebuildAllSources discards both reverse-chain tables and rebuilds them
// from the current forward table. Complexity: O(numNodes*outDegree).
func (g *GraphWithSources) rebuildAllSources() {
	n := g.NumberOfNodes()
	d := g.OutDegree()
	first, err := dtable.New(n, d)
	if err != nil {
		panic(err)
	}
	next, err := dtable.New(n, d)
	if err != nil {
		panic(err)
	}
	g.firstSource = first
	g.nextSource = next
	g.RebuildSources(0, Node(n))
}

// OnNewEdge is invoked by MergeNodes whenever the merge causes a node to
// acquire an outgoing edge it did not previously have (because only `max`
// had it), so the caller can enqueue further relation-closure work.
type OnNewEdge func(n Node, a Label)

// OnIncompat is consulted by MergeNodes before performing an identification
// that the caller's discipline forbids; returning true aborts the merge
// with ErrIncompatibleMerge. Plain presentations always pass a predicate
// that returns false; inverse presentations use it to reject merges that
// would violate the generator/inverse involution.
type OnIncompat func() bool

// MergeNodes merges max into min: every incoming and outgoing edge of max
// is transferred to min (or, where min already has the corresponding
// edge, a coincidence is reported instead of overwriting it), and max is
// left with no edges at all so the caller's node manager can free it.
//
// Precondition: min < max, both valid. This ordering is not a cosmetic
// convenience: node ids are reused after a free, so keeping the lower id
// as the survivor means earlier-assigned, more-likely-to-be-referenced
// ids are the ones that persist (spec.md §4.2).
//
// For every label a:
//   - If only δ(max, a) is defined, that outgoing edge moves to min and
//     onNewEdge(min, a) fires.
//   - If both δ(min, a) and δ(max, a) are defined and differ, the pair is
//     appended to coincidences for the caller to merge later (merging
//     here, recursively, would make the call stack depth unbounded; spec.md
//     §9 mandates an explicit worklist instead).
//   - The source chain of (max, a) is spliced into the chain of (min, a).
//
// If onIncompat fires at any point, MergeNodes returns ErrIncompatibleMerge
// and the graph is left in a well-defined but partially merged state — per
// spec.md §7, inverse inconsistency is fatal to the enclosing Stephen
// instance, which does not attempt to roll the merge back.
//
// Complexity: O(outDegree) for the label scan, plus O(sum of chain
// lengths at min and max) for the chain splice.
func (g *GraphWithSources) MergeNodes(min, max Node, onNewEdge OnNewEdge, onIncompat OnIncompat, coincidences *[][2]Node) error {
	if min >= max {
		return ErrMergeOrder
	}
	// remap rewrites any reference to the about-to-vanish `max` as a
	// reference to its survivor `min` (this is what turns a min→max or
	// max→max edge into a min-self-loop once max is gone).
	remap := func(n Node) Node {
		if n == max {
			return min
		}
		return n
	}

	// Phase 1: reconcile the outgoing edges of min and max themselves.
	for a := 0; a < g.OutDegree(); a++ {
		label := Label(a)
		rawMin := g.Neighbor(min, label)
		rawMax := g.Neighbor(max, label)

		if rawMax != Undefined {
			// max's own row is cleared unconditionally below regardless
			// of which case fires; detach it from the reverse chain of
			// its current target now, or that chain keeps listing max as
			// a source after max's forward edge has already vanished.
			g.removeSource(rawMax, label, max)
		}

		switch {
		case rawMax == Undefined:
			// nothing to transfer for this label
		case rawMin == Undefined:
			// a clean transfer of max's edge to min: nothing conflicts,
			// so onIncompat is not consulted here.
			newTarget := remap(rawMax)
			g.target.Set(int(min), int(a), int64(newTarget))
			g.addSource(newTarget, label, min)
			if onNewEdge != nil {
				onNewEdge(min, label)
			}
		case remap(rawMin) != remap(rawMax):
			if onIncompat != nil && onIncompat() {
				return ErrIncompatibleMerge
			}
			*coincidences = append(*coincidences, [2]Node{remap(rawMin), remap(rawMax)})
		}
	}

	// Phase 2: every node with an incoming edge into max (under any
	// label, from any source, including min or max itself) must instead
	// point at min, and max's reverse chains are spliced into min's.
	for a := 0; a < g.OutDegree(); a++ {
		g.transferIncoming(min, max, Label(a))
	}

	// max is now both edge-less and source-less; its outgoing row is
	// cleared so the node manager can safely recycle its id.
	for a := 0; a < g.OutDegree(); a++ {
		g.target.Set(int(max), int(a), int64(Undefined))
	}

	return nil
}

// transferIncoming walks the source chain of (max, a), redirects every
// node whose outgoing edge under label a still actually targets max, and
// relinks only those nodes onto min's chain. A chain entry is never
// spliced on trust alone: its current forward target is re-read and
// compared against max first, the same way Phase 1 re-reads Neighbor
// rather than assuming a stale value, so a chain entry some other
// operation already retargeted away from max (without yet unlinking it
// here) is dropped instead of being carried over as a phantom source.
// Complexity: O(chain length at max).
func (g *GraphWithSources) transferIncoming(min, max Node, a Label) {
	s := g.FirstSource(max, a)
	g.firstSource.Set(int(max), int(a), int64(Undefined))
	if s == Undefined {
		return
	}

	var head, tail Node = Undefined, Undefined
	for cur := s; cur != Undefined; {
		next := g.NextSource(cur, a)
		if g.target.Get(int(cur), int(a)) == int64(max) {
			g.target.Set(int(cur), int(a), int64(min))
			if head == Undefined {
				head = cur
			} else {
				g.nextSource.Set(int(tail), int(a), int64(cur))
			}
			tail = cur
		}
		cur = next
	}
	if head == Undefined {
		return
	}
	g.nextSource.Set(int(tail), int(a), int64(g.FirstSource(min, a)))
	g.firstSource.Set(int(min), int(a), int64(head))
}

// CheckInvariants verifies, for nodes in [0, upTo), that forward and
// reverse representations agree (spec.md §8 invariant 1), that no source
// chain visits a node twice (invariant 2, via a visited-set), and that
// every chain terminates in Undefined. Intended for tests, not for use on
// a hot path: it is O(numNodes*outDegree).
func (g *GraphWithSources) CheckInvariants(upTo Node) error {
	for t := Node(0); t < upTo; t++ {
		for a := 0; a < g.OutDegree(); a++ {
			label := Label(a)
			seen := make(map[Node]bool)
			s := g.FirstSource(t, label)
			for s != Undefined {
				if seen[s] {
					return fmt.Errorf("wgraph: source chain of (%d,%d) visits node %d twice", t, a, s)
				}
				seen[s] = true
				if g.Neighbor(s, label) != t {
					return fmt.Errorf("wgraph: node %d is in source chain of (%d,%d) but delta(%d,%d)=%d", s, t, a, s, a, g.Neighbor(s, label))
				}
				s = g.NextSource(s, label)
			}
		}
	}
	for s := Node(0); s < upTo; s++ {
		for a := 0; a < g.OutDegree(); a++ {
			label := Label(a)
			t := g.Neighbor(s, label)
			if t == Undefined {
				continue
			}
			if !g.IsSource(t, s, label) {
				return fmt.Errorf("wgraph: delta(%d,%d)=%d but %d is not in its source chain", s, a, t, s)
			}
		}
	}

	return nil
}
