// Package nodemgr allocates and recycles the dense node ids consumed by
// wgraph. It owns the notion of "active" versus "freed" node, tracks
// insertion order for completion scans, and provides the id-swap and
// compaction primitives standardisation needs to relabel a finished graph
// into canonical BFS order.
package nodemgr

import "errors"

// ErrNotActive indicates an operation was attempted on a node id that is
// not currently active (either never allocated or already freed).
var ErrNotActive = errors.New("nodemgr: node is not active")

// Node mirrors wgraph.Node's underlying type without importing wgraph,
// keeping this package free of a dependency on the graph representation it
// manages ids for.
type Node int64

const none Node = -1

// Manager tracks the active/free partition of the id space [0, numDefined)
// and the insertion order of active ids, threaded through two parallel
// shadow arrays (next, prev) rather than a real linked-node structure —
// the same flat-parallel-slice shape dtable.Table and wgraph's reverse
// chains use for every other mutation-heavy structure in this module.
type Manager struct {
	next, prev []Node // doubly linked list over active ids, indexed by id
	active     []bool
	freeList   []Node // LIFO stack of freed ids available for reuse
	numDefined int
	head, tail Node // insertion-order list bounds; none if empty
	numActive  int
}

// New creates a Manager with no nodes defined.
func New() *Manager {
	return &Manager{head: none, tail: none}
}

// NumberOfNodesActive returns the count of currently active nodes.
// Complexity: O(1).
func (m *Manager) NumberOfNodesActive() int { return m.numActive }

// NumberOfNodesDefined returns the size of the id space ever allocated,
// including freed ids that have not been recycled.
// Complexity: O(1).
func (m *Manager) NumberOfNodesDefined() int { return m.numDefined }

// grow extends every shadow array to accommodate id n.
func (m *Manager) grow(n int) {
	for len(m.next) <= n {
		m.next = append(m.next, none)
		m.prev = append(m.prev, none)
		m.active = append(m.active, false)
	}
}

// link appends n to the tail of the insertion-order list.
func (m *Manager) link(n Node) {
	m.prev[n] = m.tail
	m.next[n] = none
	if m.tail != none {
		m.next[m.tail] = n
	} else {
		m.head = n
	}
	m.tail = n
}

// unlink removes n from the insertion-order list.
func (m *Manager) unlink(n Node) {
	if m.prev[n] != none {
		m.next[m.prev[n]] = m.next[n]
	} else {
		m.head = m.next[n]
	}
	if m.next[n] != none {
		m.prev[m.next[n]] = m.prev[n]
	} else {
		m.tail = m.prev[n]
	}
	m.next[n] = none
	m.prev[n] = none
}

// NewActiveNode allocates a node id: it pops from the free list if
// non-empty, otherwise extends the id space by one.
// Complexity: O(1).
func (m *Manager) NewActiveNode() Node {
	var n Node
	if k := len(m.freeList); k > 0 {
		n = m.freeList[k-1]
		m.freeList = m.freeList[:k-1]
	} else {
		n = Node(m.numDefined)
		m.numDefined++
	}
	m.grow(int(n))
	m.active[n] = true
	m.numActive++
	m.link(n)

	return n
}

// FreeNode moves n from active to the free list. The id may be handed back
// out by a later NewActiveNode call.
// Complexity: O(1).
func (m *Manager) FreeNode(n Node) error {
	if n < 0 || int(n) >= len(m.active) || !m.active[n] {
		return ErrNotActive
	}
	m.unlink(n)
	m.active[n] = false
	m.numActive--
	m.freeList = append(m.freeList, n)

	return nil
}

// IsActive reports whether n is currently an active node.
// Complexity: O(1).
func (m *Manager) IsActive(n Node) bool {
	return n >= 0 && int(n) < len(m.active) && m.active[n]
}

// ActiveNodes returns every active node id in insertion order.
// Complexity: O(NumberOfNodesActive()).
func (m *Manager) ActiveNodes() []Node {
	out := make([]Node, 0, m.numActive)
	for n := m.head; n != none; n = m.next[n] {
		out = append(out, n)
	}

	return out
}

// SwapIds exchanges the active/free status and list position of a and b.
// Callers are expected to have already swapped the corresponding rows in
// whatever graph representation these ids index into (wgraph.SwapNodes);
// this method keeps the manager's own bookkeeping consistent with that.
// Complexity: O(1) when both ids are active; otherwise O(length of the
// free list), which is scanned to relabel the freed id.
func (m *Manager) SwapIds(a, b Node) {
	if a == b {
		return
	}
	aActive, bActive := m.IsActive(a), m.IsActive(b)
	switch {
	case aActive && bActive:
		// both occupied: relink each in the other's former list position.
		aPrev, aNext := m.prev[a], m.next[a]
		bPrev, bNext := m.prev[b], m.next[b]
		switch {
		case aNext == b:
			// a and b are adjacent, a immediately before b. aNext and
			// bPrev both equal the other id being relabelled in this
			// same call, so passing them straight through to the second
			// replaceInList call would wire a node to itself once both
			// ids have traded places; pass the literal other id instead
			// so both calls agree on the new b -> a link.
			m.replaceInList(a, b, aPrev, a)
			m.replaceInList(b, a, b, bNext)
		case bNext == a:
			// symmetric: b immediately before a.
			m.replaceInList(b, a, bPrev, b)
			m.replaceInList(a, b, a, aNext)
		default:
			m.replaceInList(a, b, aPrev, aNext)
			m.replaceInList(b, a, bPrev, bNext)
		}
	case aActive:
		// a was active, b was free: after the swap b takes a's list
		// position and a takes b's place in the free list.
		m.unlink(a)
		m.active[a] = false
		m.active[b] = true
		m.link(b)
		m.replaceInFreeList(b, a)
	case bActive:
		// symmetric case: b was active, a was free.
		m.unlink(b)
		m.active[b] = false
		m.active[a] = true
		m.link(a)
		m.replaceInFreeList(a, b)
	default:
		m.replaceInFreeList(a, b)
		m.replaceInFreeList(b, a)
	}
}

// replaceInList rewires the insertion-order list so that newID occupies the
// list position oldID used to have (given oldID's former prev/next), used
// when a and b trade active status with each other.
func (m *Manager) replaceInList(oldID, newID, prevID, nextID Node) {
	m.prev[newID] = prevID
	m.next[newID] = nextID
	if prevID != none {
		m.next[prevID] = newID
	} else if m.head == oldID {
		m.head = newID
	}
	if nextID != none {
		m.prev[nextID] = newID
	} else if m.tail == oldID {
		m.tail = newID
	}
}

// replaceInFreeList swaps the occurrence of oldID in the free list for
// newID, leaving the stack order otherwise unchanged.
func (m *Manager) replaceInFreeList(oldID, newID Node) {
	for i, id := range m.freeList {
		if id == oldID {
			m.freeList[i] = newID
			return
		}
	}
}

// Compact returns the permutation that relabels every active node to a
// dense prefix [0, NumberOfNodesActive()), preserving the relative order
// given by order (typically a BFS or insertion-order listing of active
// nodes). perm[oldID] is the node's new id; ids not present in order are
// left unmapped (-1) and the caller must not reference them afterward.
// Compact does not itself touch the manager's bookkeeping or any graph
// table — callers apply perm via wgraph.SwapNodes/RenameNode and then
// rebuild a fresh Manager over the compacted range.
// Complexity: O(len(order)).
func (m *Manager) Compact(order []Node) []Node {
	perm := make([]Node, m.numDefined)
	for i := range perm {
		perm[i] = none
	}
	for newID, oldID := range order {
		perm[oldID] = Node(newID)
	}

	return perm
}
