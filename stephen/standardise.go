package stephen

import (
	"github.com/wordproblem/stephen/nodemgr"
	"github.com/wordproblem/stephen/wgraph"
)

// bfsOrder lists every active node reachable from node 0 in
// breadth-first order. Every node of a converged Stephen graph is
// reachable from 0 by construction (spec.md §8 invariant: "every active
// node is reachable from node 0"), so this enumerates the whole active
// set. Grounded on algorithms.BFS's queue shape, already reused once for
// paths.WordsBetween.
func (s *Stephen) bfsOrder() []wgraph.Node {
	visited := map[wgraph.Node]bool{0: true}
	queue := []wgraph.Node{0}
	order := make([]wgraph.Node, 0, s.nodes.NumberOfNodesActive())

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)
		for a := 0; a < s.graph.OutDegree(); a++ {
			t := s.graph.Neighbor(n, wgraph.Label(a))
			if t != wgraph.Undefined && !visited[t] {
				visited[t] = true
				queue = append(queue, t)
			}
		}
	}

	return order
}

// standardise relabels every active node into the dense range
// [0, len(order)) following BFS order. nodemgr.Compact computes the
// permutation (oldID -> newID); this method realises it against the graph
// as a sequence of wgraph.SwapNodes transpositions, then rebuilds the node
// manager over the compacted range and shrinks the graph to match.
//
// livesAt/heldBy track, for every id in the defined range, which original
// id currently occupies which slot, so each transposition resolves in
// O(1) instead of searching for a node's current location every time.
func (s *Stephen) standardise() {
	order := s.bfsOrder()
	mgrOrder := make([]nodemgr.Node, len(order))
	for i, n := range order {
		mgrOrder[i] = nodemgr.Node(n)
	}
	perm := s.nodes.Compact(mgrOrder)
	n := s.graph.NumberOfNodes()

	livesAt := make([]wgraph.Node, n) // livesAt[originalID] = slot it now lives in
	heldBy := make([]wgraph.Node, n)  // heldBy[slot] = original id now living there
	for i := 0; i < n; i++ {
		livesAt[i] = wgraph.Node(i)
		heldBy[i] = wgraph.Node(i)
	}

	for oldID, newID := range perm {
		if newID < 0 {
			continue // not reachable from 0; left behind by ShrinkTo below
		}
		target := wgraph.Node(newID)
		cur := livesAt[oldID]
		if cur == target {
			continue
		}
		s.graph.SwapNodes(target, cur)
		displaced := heldBy[target]
		heldBy[target] = wgraph.Node(oldID)
		heldBy[cur] = displaced
		livesAt[oldID] = target
		livesAt[displaced] = cur
	}

	if s.accept != wgraph.Undefined {
		s.accept = livesAt[s.accept]
	}

	s.graph.ShrinkTo(len(order))
	s.nodes = nodemgr.New()
	for range order {
		s.nodes.NewActiveNode()
	}
}
