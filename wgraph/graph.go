// Package wgraph implements the deterministic labelled digraph at the core
// of Stephen's procedure: a partial transition function δ: Nodes × Labels
// ⇀ Nodes (Graph), and its source-tracked extension that additionally
// records, for every (target, label) pair, the list of nodes with an edge
// into it (GraphWithSources).
//
// Node ids are opaque, dense, non-negative integers. Id 0 is conventionally
// the start node of any graph built by this package's callers, but nothing
// in this package treats node 0 specially — that convention lives one
// layer up, in the stephen package.
package wgraph

import "github.com/wordproblem/stephen/dtable"

// Node is an opaque node identifier. Node ids are not stable across
// SwapNodes, RenameNode or MergeNodes; callers must treat them as
// ephemeral handles, not durable keys.
type Node int64

// Label is an edge label, an integer in [0, OutDegree()).
type Label int

// Undefined is returned by Neighbor when δ(n, a) is not defined.
const Undefined Node = Node(dtable.Undefined)

// Graph is a deterministic partial-function labelled digraph: each
// (node, label) pair maps to at most one target node. It is represented as
// a dense |Nodes| × outDegree table, following spec.md's Dense 2-D table
// design (package dtable) rather than per-node adjacency maps, because
// node ids here are small dense integers assigned by a nodemgr.Manager.
type Graph struct {
	target    *dtable.Table
	outDegree int
	numNodes  int
}

// New creates a Graph with numNodes nodes and the given out-degree, every
// cell initialised to Undefined.
// Complexity: O(numNodes*outDegree).
func New(numNodes, outDegree int) *Graph {
	tbl, err := dtable.New(numNodes, outDegree)
	if err != nil {
		panic(err)
	}

	return &Graph{target: tbl, outDegree: outDegree, numNodes: numNodes}
}

// NumberOfNodes returns the number of node rows currently allocated.
// Complexity: O(1).
func (g *Graph) NumberOfNodes() int { return g.numNodes }

// OutDegree returns the size of the label alphabet this graph is indexed by.
// Complexity: O(1).
func (g *Graph) OutDegree() int { return g.outDegree }

// Neighbor returns δ(n, a), or Undefined if no such edge is defined.
// Complexity: O(1).
func (g *Graph) Neighbor(n Node, a Label) Node {
	return Node(g.target.Get(int(n), int(a)))
}

// HasEdge reports whether δ(n, a) is defined.
// Complexity: O(1).
func (g *Graph) HasEdge(n Node, a Label) bool {
	return g.Neighbor(n, a) != Undefined
}

// AddEdge sets δ(s, a) = t. Precondition: δ(s, a) is currently Undefined;
// violating it returns ErrEdgeExists rather than silently overwriting,
// since a silent overwrite would break the determinism invariant spec.md
// §8 requires.
// Complexity: O(1).
func (g *Graph) AddEdge(s Node, t Node, a Label) error {
	if g.Neighbor(s, a) != Undefined {
		return ErrEdgeExists
	}
	g.target.Set(int(s), int(a), int64(t))

	return nil
}

// AddEdgeNC sets δ(s, a) = t without checking the precondition. Named to
// match the "no checks" (_nc) convention the original C++ uses throughout
// its hot paths (add_edge_nc); for callers that have already established
// the precondition themselves.
// Complexity: O(1).
func (g *Graph) AddEdgeNC(s, t Node, a Label) {
	g.target.Set(int(s), int(a), int64(t))
}

// RemoveEdge clears δ(s, a), returning ErrNoSuchEdge if it was already
// Undefined.
// Complexity: O(1).
func (g *Graph) RemoveEdge(s Node, a Label) error {
	if g.Neighbor(s, a) == Undefined {
		return ErrNoSuchEdge
	}
	g.target.Set(int(s), int(a), int64(Undefined))

	return nil
}

// AddNodes grows the graph by k fresh nodes, all of whose outgoing edges
// are Undefined.
// Complexity: O((numNodes+k)*outDegree).
func (g *Graph) AddNodes(k int) {
	if k <= 0 {
		return
	}
	g.target.AddRows(k)
	g.numNodes += k
}

// ShrinkTo discards every node row from k onward, keeping [0, k). Intended
// for post-standardisation compaction, once every surviving node has been
// relabelled into [0, k) and nothing above k is reachable any longer.
// Complexity: O(k*outDegree).
func (g *Graph) ShrinkTo(k int) {
	if k >= g.numNodes {
		return
	}
	g.target.ShrinkRowsTo(k)
	g.numNodes = k
}

// AddToOutDegree grows the label alphabet by k labels; every node's new
// columns are Undefined.
// Complexity: O(numNodes*(outDegree+k)).
func (g *Graph) AddToOutDegree(k int) {
	if k <= 0 {
		return
	}
	g.target.AddCols(k)
	g.outDegree += k
}

// Edges returns every (source, label, target) triple with a defined
// target, in row-major (source, then label) order.
// Complexity: O(numNodes*outDegree).
func (g *Graph) Edges() []Triple {
	out := make([]Triple, 0)
	for s := 0; s < g.numNodes; s++ {
		row := g.target.Row(s)
		for a, t := range row {
			if t != dtable.Undefined {
				out = append(out, Triple{Source: Node(s), Label: Label(a), Target: Node(t)})
			}
		}
	}

	return out
}

// NumberOfEdges counts defined transitions.
// Complexity: O(numNodes*outDegree).
func (g *Graph) NumberOfEdges() int {
	n := 0
	for s := 0; s < g.numNodes; s++ {
		row := g.target.Row(s)
		for _, t := range row {
			if t != dtable.Undefined {
				n++
			}
		}
	}

	return n
}

// Triple is a single (source, label, target) edge, returned by Edges.
type Triple struct {
	Source Node
	Label  Label
	Target Node
}
