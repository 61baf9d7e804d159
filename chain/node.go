package chain

import (
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/transversal"
)

// node is the shared representation behind both MutableChain and Chain.
// prev is only ever set while a node is reachable through a
// MutableChain; Freeze produces fresh nodes with prev left nil.
type node struct {
	beta  point.Point
	trans transversal.Transversal
	own   []perm.Permutation

	next *node
	prev *node
}

// cloneContent returns a new node with the same beta/trans/own but no
// links, for use by Freeze and by MutableChain operations that need a
// detached copy.
func (n *node) cloneContent() *node {
	return &node{beta: n.beta, trans: n.trans, own: append([]perm.Permutation(nil), n.own...)}
}
