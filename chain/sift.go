package chain

import (
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

// Sifts reports whether g sifts to the identity through c, i.e. g is a
// member of the group the chain represents (§4.F).
func (c Chain) Sifts(g perm.Permutation) bool {
	_, residual := c.BasicSift(g)

	return residual.IsIdentity()
}

// BasicSift drives g down the chain one node at a time (§4.F): at node i
// with base β, if β·g lies in that node's orbit, replace
// g ← g·UInv(β·g) and advance to node i+1; otherwise halt immediately.
// It returns the base points of the nodes never reached (the chain
// "remaining" after the point of failure) and the residual g left over
// at the point sifting stopped — residual is identity iff g is a member.
func (c Chain) BasicSift(g perm.Permutation) (remainingBase []point.Point, residual perm.Permutation) {
	cur := c.head
	for cur != nil {
		img := g.Image(cur.beta)
		uInv, ok := cur.trans.UInv(img)
		if !ok {
			break
		}
		g = g.Op(uInv)
		cur = cur.next
	}

	for n := cur; n != nil; n = n.next {
		remainingBase = append(remainingBase, n.beta)
	}

	return remainingBase, g
}
