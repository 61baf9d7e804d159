package schreiersims

import (
	"math/big"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/transversal"
)

// nonIdentityDedup drops identity generators; Schreier–Sims never needs
// them and they only waste orbit/transversal work.
func nonIdentityDedup(gens []perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, 0, len(gens))
	for _, g := range gens {
		if !g.IsIdentity() {
			out = append(out, g)
		}
	}

	return out
}

// smallestMovedPoint returns the least point any generator in gens
// moves, for picking an initial base point when the caller supplies no
// hint.
func smallestMovedPoint(gens []perm.Permutation) (point.Point, bool) {
	found := false
	var best point.Point
	for _, g := range gens {
		min, ok := g.SupportMin()
		if !ok {
			continue
		}
		if !found || min < best {
			best = min
			found = true
		}
	}

	return best, found
}

// seedBase pushes the chain's first level (β₀, all of gens) and, if the
// caller supplied further hint points, empty placeholder levels for
// each — left for the main loop to fill in as Schreier generators or
// random samples land on them.
func seedBase(m *chain.MutableChain, gens []perm.Permutation, baseHint []point.Point) {
	if len(gens) == 0 {
		return
	}
	hint := baseHint
	if len(hint) == 0 {
		beta, ok := smallestMovedPoint(gens)
		if !ok {
			return
		}
		hint = []point.Point{beta}
	}

	beta0 := hint[0]
	trans0 := transversal.New(beta0).Updated(gens, gens)
	m.PushBack(beta0, trans0, gens)
	for _, beta := range hint[1:] {
		m.PushBack(beta, transversal.New(beta), nil)
	}
}

// siftThroughMutable drives g down m one node at a time, exactly like
// chain.Chain.BasicSift, but over a MutableChain still under
// construction. Returns the index of the first node where sifting
// failed (m.Len() on full success) and the residual left at that point.
func siftThroughMutable(m *chain.MutableChain, g perm.Permutation) (int, perm.Permutation) {
	n := m.Len()
	for i := 0; i < n; i++ {
		beta, trans, _ := m.At(i)
		img := g.Image(beta)
		uInv, ok := trans.UInv(img)
		if !ok {
			return i, g
		}
		g = g.Op(uInv)
	}

	return n, g
}

// pickNewBasePoint returns the least point residual moves that is not
// already part of usedBase, for extending the chain past its current
// tail. residual is known non-identity, so a moved point always exists.
func pickNewBasePoint(residual perm.Permutation, usedBase []point.Point) point.Point {
	used := make(map[point.Point]bool, len(usedBase))
	for _, b := range usedBase {
		used[b] = true
	}
	for _, p := range residual.Support() {
		if !used[p] {
			return p
		}
	}
	// residual moves only already-used base points: impossible for a
	// residual that failed to sift through all of them, but fall back
	// to its support minimum rather than a panic.
	min, _ := residual.SupportMin()

	return min
}

// ownGeneratorsFrom returns the union of the own generating sets of
// nodes [from, m.Len()) — the generators of G^(from) = Stab(β_0..β_{from-1})
// this construction actually has in hand. A generator first assigned to
// some deeper level j >= from still fixes β_0..β_{from-1} (it sifted
// cleanly through every level before j), so it belongs to G^(from) too;
// orbit_from must be computed under all of it, not just node from's own
// bucket.
func ownGeneratorsFrom(m *chain.MutableChain, from int) []perm.Permutation {
	var out []perm.Permutation
	for j := from; j < m.Len(); j++ {
		_, _, own := m.At(j)
		out = append(out, own...)
	}

	return out
}

// extendLevel adds g to node i's own generating set (§4.G: "extend the
// tail with it at the appropriate level") and grows the transversal of
// every node k <= i, not just node i's. g sifted cleanly through levels
// 0..i-1 before failing at i, so it fixes β_0..β_{i-1} and is a member
// of G^(k) for every k <= i — it can enlarge orbit_k there exactly as it
// enlarges orbit_i.
func extendLevel(m *chain.MutableChain, i int, g perm.Permutation) {
	_, _, own := m.At(i)
	newOwn := append(append([]perm.Permutation(nil), own...), g)
	m.SetOwnGenerators(i, newOwn)

	for k := 0; k <= i; k++ {
		_, transK, _ := m.At(k)
		m.SetTransversal(k, transK.Updated([]perm.Permutation{g}, ownGeneratorsFrom(m, k)))
	}
}

// trimTrivialTail drops any trailing nodes left over from an unused
// base hint: a node contributes nothing to the group if it was never
// extended beyond its trivial singleton orbit.
func trimTrivialTail(m *chain.MutableChain) {
	for m.Len() > 0 {
		i := m.Len() - 1
		_, trans, own := m.At(i)
		if trans.Len() == 1 && len(own) == 0 {
			m.TruncateAfter(i - 1)

			continue
		}

		break
	}
}

// mutableOrder computes ∏|orbit_i| directly from m, without the
// allocation cost of a full Freeze, so the randomized builder's hot
// loop can cheaply check its stopping condition.
func mutableOrder(m *chain.MutableChain) *big.Int {
	order := big.NewInt(1)
	for i := 0; i < m.Len(); i++ {
		_, trans, _ := m.At(i)
		order.Mul(order, big.NewInt(int64(trans.Len())))
	}

	return order
}

func checkCancel(o Options) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
