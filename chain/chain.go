package chain

import (
	"math/big"

	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/rng"
	"github.com/dkrylov/bsgs/transversal"
)

// Chain is the frozen, read-only BSGS chain (§3/§4.F). The zero value is
// the trivial chain (Term only, order 1).
type Chain struct {
	head *node
}

// Node is a detached, read-only view of one chain element, returned by
// Chain.Nodes/NodeAt for consumers (search, partition, basechange) that
// need to walk the chain without reaching into its internals.
type Node struct {
	beta  point.Point
	trans transversal.Transversal
	own   []perm.Permutation
}

// Beta returns this node's base point.
func (n Node) Beta() point.Point { return n.beta }

// Transversal returns this node's transversal.
func (n Node) Transversal() transversal.Transversal { return n.trans }

// OwnGenerators returns the strong generators stored at this node.
// Generators added while a chain is built fix every earlier base point
// and move this node's. A node that started a schreiersims build (the
// first node of a chain, or of a suffix basechange rebuilt) also holds
// that build's whole input generating set, which can include generators
// that fix this node's base point.
func (n Node) OwnGenerators() []perm.Permutation { return n.own }

func nodeView(n *node) Node {
	return Node{beta: n.beta, trans: n.trans, own: n.own}
}

// Length returns the number of Nodes in the chain.
func (c Chain) Length() int {
	n := 0
	for cur := c.head; cur != nil; cur = cur.next {
		n++
	}

	return n
}

// Base returns the chain's base points in order.
func (c Chain) Base() []point.Point {
	out := make([]point.Point, 0, c.Length())
	for cur := c.head; cur != nil; cur = cur.next {
		out = append(out, cur.beta)
	}

	return out
}

// Nodes returns a detached, read-only view of every node in order.
func (c Chain) Nodes() []Node {
	out := make([]Node, 0, c.Length())
	for cur := c.head; cur != nil; cur = cur.next {
		out = append(out, nodeView(cur))
	}

	return out
}

// NodeAt returns the i-th node's read-only view.
func (c Chain) NodeAt(i int) Node {
	cur := c.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return nodeView(cur)
}

// StrongGeneratingSet flattens ownGenerators over every node.
func (c Chain) StrongGeneratingSet() []perm.Permutation {
	var out []perm.Permutation
	for cur := c.head; cur != nil; cur = cur.next {
		out = append(out, cur.own...)
	}

	return out
}

// Order returns ∏ |orbit_i| over the chain's nodes (§3), as a big.Int
// since the product of orbit sizes overflows a machine word well within
// the degrees this library is meant to handle (e.g. Sym(21)).
func (c Chain) Order() *big.Int {
	order := big.NewInt(1)
	for cur := c.head; cur != nil; cur = cur.next {
		order.Mul(order, big.NewInt(int64(cur.trans.Len())))
	}

	return order
}

// IsFixed reports whether every strong generator of this chain fixes k
// (§4.F).
func (c Chain) IsFixed(k point.Point) bool {
	for cur := c.head; cur != nil; cur = cur.next {
		for _, s := range cur.own {
			if s.Image(k) != k {
				return false
			}
		}
	}

	return true
}

// RandomElement recursively picks a uniform random U(α) at each node and
// composes them (§4.F).
func (c Chain) RandomElement(r rng.Rng) perm.Permutation {
	g := perm.Identity(0)
	for cur := c.head; cur != nil; cur = cur.next {
		points := cur.trans.Orbit().Points()
		pick := points[r.NextInt(len(points))]
		u, _ := cur.trans.U(pick)
		g = g.Op(u)
	}

	return g
}

// ToMutable rebuilds a MutableChain from c's content, detached from c
// (mutating the result never affects c) — the entry point basechange's
// CutRedundantAfter uses to trim an already-published chain.
func (c Chain) ToMutable() *MutableChain {
	m := NewMutableChain()
	for cur := c.head; cur != nil; cur = cur.next {
		m.PushBack(cur.beta, cur.trans, append([]perm.Permutation(nil), cur.own...))
	}

	return m
}
