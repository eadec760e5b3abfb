package stephen

import (
	"fmt"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/nodemgr"
	"github.com/wordproblem/stephen/wgraph"
)

// ensureGraphSize grows the graph so that node id upTo has a row, should
// NewActiveNode have outrun the graph's current row count.
func (s *Stephen) ensureGraphSize(upTo wgraph.Node) {
	if int(upTo) >= s.graph.NumberOfNodes() {
		s.graph.AddNodes(int(upTo) + 1 - s.graph.NumberOfNodes())
	}
}

// defEdge realises δ(from, l), creating a new node and edge if none exists
// yet, and — for an inverse presentation — eagerly maintaining the
// complementary return edge the involution discipline requires. Mirrors
// stephen::Definition in spirit: the single primitive both the initial
// word-walk and relation-closure forward walks are built from.
func (s *Stephen) defEdge(from wgraph.Node, l letters.Letter) (wgraph.Node, error) {
	lbl := wgraph.Label(l)
	if t := s.graph.Neighbor(from, lbl); t != wgraph.Undefined {
		return t, nil
	}

	id := s.nodes.NewActiveNode()
	node := wgraph.Node(id)
	s.ensureGraphSize(node)
	if err := s.graph.AddEdge(from, node, lbl); err != nil {
		panic(fmt.Sprintf("stephen: defEdge precondition violated: %v", err))
	}
	s.enqueueAllRules(node)

	if s.inv != nil {
		if err := s.maintainInverseEdge(from, node, l); err != nil {
			return wgraph.Undefined, err
		}
	}

	return node, nil
}

// maintainInverseEdge defines the complementary edge q --(|A|+ι(l))--> p
// alongside a freshly defined forward edge p --l--> q, or confirms an
// existing one agrees. See DESIGN.md's "Inverse-presentation involution
// enforcement" for why this check runs here rather than through
// wgraph.OnIncompat.
func (s *Stephen) maintainInverseEdge(p, q wgraph.Node, l letters.Letter) error {
	invL, ok := s.inv.InverseOf(l)
	if !ok {
		panic("stephen: InverseOf undefined for an alphabet letter")
	}
	n := len(s.pres.Alphabet())
	compLabel := wgraph.Label(n + int(invL))

	existing := s.graph.Neighbor(q, compLabel)
	if existing == wgraph.Undefined {
		if err := s.graph.AddEdge(q, p, compLabel); err != nil {
			panic(fmt.Sprintf("stephen: complementary edge precondition violated: %v", err))
		}
		return nil
	}
	if existing != p {
		return ErrInverseInconsistent
	}

	return nil
}

// completePath walks w from `from`, defining edges as necessary, and
// returns the endpoint. Used both for the initial word-walk and for the
// `u` side of a relation-closure item, which always gets full definition
// power.
func (s *Stephen) completePath(from wgraph.Node, w letters.Word) (wgraph.Node, error) {
	cur := from
	for _, l := range w {
		next, err := s.defEdge(cur, l)
		if err != nil {
			return cur, err
		}
		cur = next
	}

	return cur, nil
}

// walkReadOnly walks w from `from` following only edges that already
// exist, used once completion has converged and every edge the word needs
// is guaranteed defined.
func (s *Stephen) walkReadOnly(from wgraph.Node, w letters.Word) wgraph.Node {
	cur := from
	for _, l := range w {
		cur = s.graph.Neighbor(cur, wgraph.Label(l))
	}

	return cur
}

// processRelationItem enforces spec.md §4.5's relation-closure rule for a
// single (node, rule) obligation: walk rule u fully (defining as needed),
// walk rule v as far as existing edges allow, and if v runs out before u's
// endpoint is reached, trace the remaining suffix of v backwards from u's
// endpoint via source chains — defining a node ahead of an edge where a
// chain has no head — until the two walks meet. Any disagreement between
// the two endpoints is recorded as a coincidence, not merged inline,
// keeping the call stack bounded (spec.md §9).
func (s *Stephen) processRelationItem(item workItem) error {
	u, v := s.rules[item.rule][0], s.rules[item.rule][1]

	qu, err := s.completePath(item.node, u)
	if err != nil {
		return err
	}

	cur := item.node
	k := 0
	for k < len(v) {
		next := s.graph.Neighbor(cur, wgraph.Label(v[k]))
		if next == wgraph.Undefined {
			break
		}
		cur = next
		k++
	}

	if k == len(v) {
		s.pushCoincidence(cur, qu)
		return nil
	}

	b := qu
	for j := len(v) - 1; j >= k; j-- {
		label := wgraph.Label(v[j])
		pred := s.graph.FirstSource(b, label)
		if pred == wgraph.Undefined {
			pred, err = s.defEdgeBackward(b, label)
			if err != nil {
				return err
			}
		}
		b = pred
	}
	s.pushCoincidence(b, cur)

	return nil
}

// defEdgeBackward allocates a fresh node p and defines p --label--> target,
// the mirror image of defEdge used when a relation's v-side runs out of
// existing forward edges but the u-side has already committed to an
// endpoint: rather than extending v forward past a point u's walk already
// passed, a new predecessor is created behind the known endpoint. label is
// always one of the ordinary alphabet labels, since it comes from walking a
// rule side.
func (s *Stephen) defEdgeBackward(target wgraph.Node, label wgraph.Label) (wgraph.Node, error) {
	id := s.nodes.NewActiveNode()
	node := wgraph.Node(id)
	s.ensureGraphSize(node)
	if err := s.graph.AddEdge(node, target, label); err != nil {
		panic(fmt.Sprintf("stephen: defEdgeBackward precondition violated: %v", err))
	}
	s.enqueueAllRules(node)

	if s.inv != nil {
		if err := s.maintainInverseEdge(node, target, letters.Letter(label)); err != nil {
			return wgraph.Undefined, err
		}
	}

	return node, nil
}

// pushCoincidence schedules the identification of a and b, deduplicating
// the trivial a == b case inline rather than growing the queue with no-ops.
func (s *Stephen) pushCoincidence(a, b wgraph.Node) {
	if a == b {
		return
	}
	s.coincidenceQueue = append(s.coincidenceQueue, [2]wgraph.Node{a, b})
}

// processCoincidence pops and applies one pending identification via
// wgraph.MergeNodes, freeing the absorbed node and redirecting accept if
// it was the one absorbed. Any coincidences MergeNodes itself discovers
// while reconciling the two nodes' outgoing edges are appended back onto
// the same queue.
func (s *Stephen) processCoincidence() error {
	pair := s.coincidenceQueue[0]
	s.coincidenceQueue = s.coincidenceQueue[1:]
	a, b := pair[0], pair[1]
	if a == b {
		return nil
	}
	min, max := a, b
	if min > max {
		min, max = max, min
	}

	onNewEdge := func(n wgraph.Node, _ wgraph.Label) {
		s.enqueueAllRules(n)
	}
	// Involution consistency is enforced eagerly in maintainInverseEdge at
	// definition time, so the merge-time hook never needs to reject a
	// merge on that basis; see DESIGN.md.
	onIncompat := func() bool { return false }

	var fresh [][2]wgraph.Node
	if err := s.graph.MergeNodes(min, max, onNewEdge, onIncompat, &fresh); err != nil {
		return fmt.Errorf("stephen: merging nodes %d and %d: %w", min, max, err)
	}
	s.coincidenceQueue = append(s.coincidenceQueue, fresh...)

	if err := s.nodes.FreeNode(nodemgr.Node(max)); err != nil {
		panic(fmt.Sprintf("stephen: freeing merged node: %v", err))
	}
	if s.accept == max {
		s.accept = min
	}

	return nil
}
