package chain

import (
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/transversal"
)

// MutableChain is the builder-owned working structure schreiersims grows
// and basechange reshapes. It is owned exclusively by its builder until
// Freeze (§3 Ownership/Lifecycle); nothing outside this module ever
// receives a *node from it.
type MutableChain struct {
	head *node
	tail *node
}

// NewMutableChain returns an empty MutableChain (the trivial group:
// Term only).
func NewMutableChain() *MutableChain {
	return &MutableChain{}
}

// Len returns the number of Nodes.
func (m *MutableChain) Len() int {
	n := 0
	for cur := m.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// Base returns the base points in chain order.
func (m *MutableChain) Base() []point.Point {
	out := make([]point.Point, 0, m.Len())
	for cur := m.head; cur != nil; cur = cur.next {
		out = append(out, cur.beta)
	}

	return out
}

// nodeAt walks from head to the i-th node (0-based). Panics if i is out
// of range — a programmer error within this package, never exposed.
func (m *MutableChain) nodeAt(i int) *node {
	cur := m.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}

// At exposes read-only access to node i's content for builders.
func (m *MutableChain) At(i int) (beta point.Point, trans transversal.Transversal, own []perm.Permutation) {
	n := m.nodeAt(i)

	return n.beta, n.trans, n.own
}

// SetTransversal replaces node i's transversal in place.
func (m *MutableChain) SetTransversal(i int, t transversal.Transversal) {
	m.nodeAt(i).trans = t
}

// SetOwnGenerators replaces node i's own generating set in place.
func (m *MutableChain) SetOwnGenerators(i int, gens []perm.Permutation) {
	m.nodeAt(i).own = gens
}

// SetBeta replaces node i's base point in place. The node's transversal
// is left as it was; rebuilding it to match is up to the caller.
func (m *MutableChain) SetBeta(i int, beta point.Point) {
	m.nodeAt(i).beta = beta
}

// PushBack appends a new node at the tail of the chain, linking prev/next
// so the new node can re-seat itself later without a walk from head.
func (m *MutableChain) PushBack(beta point.Point, trans transversal.Transversal, own []perm.Permutation) {
	n := &node{beta: beta, trans: trans, own: own, prev: m.tail}
	if m.tail != nil {
		m.tail.next = n
	} else {
		m.head = n
	}
	m.tail = n
}

// InsertAt splices a new node in at position i (0-based), shifting
// everything from i onward one position later.
func (m *MutableChain) InsertAt(i int, beta point.Point, trans transversal.Transversal, own []perm.Permutation) {
	n := &node{beta: beta, trans: trans, own: own}
	if i == 0 {
		n.next = m.head
		if m.head != nil {
			m.head.prev = n
		}
		m.head = n
		if m.tail == nil {
			m.tail = n
		}

		return
	}
	before := m.nodeAt(i - 1)
	n.prev = before
	n.next = before.next
	if before.next != nil {
		before.next.prev = n
	} else {
		m.tail = n
	}
	before.next = n
}

// TruncateAfter drops every node after position i (cutRedundantAfter /
// MaybeCutTail of §4.H). i == -1 truncates the whole chain to Term.
func (m *MutableChain) TruncateAfter(i int) {
	if i < 0 {
		m.head = nil
		m.tail = nil

		return
	}
	n := m.nodeAt(i)
	n.next = nil
	m.tail = n
}

// SwapAdjacentContent exchanges the (beta, trans, own) content of nodes i
// and i+1 in place, without touching links — the "actual adjacent swap"
// fallback strategy of §4.H's base swap primitive. Callers are expected
// to rebuild both nodes' transversals afterward.
func (m *MutableChain) SwapAdjacentContent(i int) {
	a := m.nodeAt(i)
	b := a.next
	a.beta, b.beta = b.beta, a.beta
	a.trans, b.trans = b.trans, a.trans
	a.own, b.own = b.own, a.own
}

// Freeze walks the MutableChain once and returns an immutable Chain with
// fresh, detached nodes (no prev pointers) — the copy-on-freeze step of
// §3's publication lifecycle.
func (m *MutableChain) Freeze() Chain {
	var head, tail *node
	for cur := m.head; cur != nil; cur = cur.next {
		fresh := cur.cloneContent()
		if head == nil {
			head = fresh
		} else {
			tail.next = fresh
		}
		tail = fresh
	}

	return Chain{head: head}
}

// Clone returns an independent copy of m: changing the node list of
// either chain afterwards never affects the other.
func (m *MutableChain) Clone() *MutableChain {
	out := NewMutableChain()
	for cur := m.head; cur != nil; cur = cur.next {
		out.PushBack(cur.beta, cur.trans, append([]perm.Permutation(nil), cur.own...))
	}

	return out
}
