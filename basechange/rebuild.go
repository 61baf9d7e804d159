package basechange

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/schreiersims"
)

// RebuildFromScratch reruns Schreier–Sims over c's full strong
// generating set with newBase as the base hint (§4.H strategy 1).
// Correct for any reordering, including one that drops or introduces
// base points, at the cost of redoing the whole chain.
func RebuildFromScratch(ctx context.Context, c chain.Chain, newBase []point.Point) (chain.Chain, error) {
	gens := c.StrongGeneratingSet()
	target := c.Order()

	rebuilt, err := schreiersims.BuildDeterministic(ctx, gens, target, schreiersims.WithBaseHint(newBase))
	if err != nil {
		return chain.Chain{}, fmt.Errorf("basechange: RebuildFromScratch: %w", err)
	}

	return rebuilt, nil
}

// rebuildSuffixFrom rebuilds c from level i onward so the suffix's base
// begins with newSuffixBase, reusing levels [0, i) untouched (§4.H
// strategy 2: "fix everything above level i"). The generators driving
// the rebuild are exactly the own-generators of nodes [i, end) — by
// construction these generate Stab(β_0..β_{i-1}), so the prefix's
// invariants are never disturbed.
func rebuildSuffixFrom(ctx context.Context, c chain.Chain, i int, newSuffixBase []point.Point) (chain.Chain, error) {
	nodes := c.Nodes()
	prefix := nodes[:i]

	var stabGens []perm.Permutation
	target := big.NewInt(1)
	for _, n := range nodes[i:] {
		stabGens = append(stabGens, n.OwnGenerators()...)
		target.Mul(target, big.NewInt(int64(n.Transversal().Len())))
	}

	rebuilt, err := schreiersims.BuildDeterministic(ctx, stabGens, target, schreiersims.WithBaseHint(newSuffixBase))
	if err != nil {
		return chain.Chain{}, fmt.Errorf("basechange: rebuildSuffixFrom(%d): %w", i, err)
	}

	m := chain.NewMutableChain()
	for _, n := range prefix {
		m.PushBack(n.Beta(), n.Transversal(), n.OwnGenerators())
	}
	for _, rn := range rebuilt.Nodes() {
		m.PushBack(rn.Beta(), rn.Transversal(), rn.OwnGenerators())
	}

	return m.Freeze(), nil
}

// SwapAdjacent exchanges β_i and β_{i+1} (§4.H's base swap primitive),
// rebuilding only the suffix from level i — levels before i are copied
// across unchanged.
func SwapAdjacent(ctx context.Context, c chain.Chain, i int) (chain.Chain, error) {
	nodes := c.Nodes()
	if i < 0 || i+1 >= len(nodes) {
		return chain.Chain{}, fmt.Errorf("basechange: SwapAdjacent(%d): %w", i, ErrIndexOutOfRange)
	}

	newSuffixBase := make([]point.Point, 0, len(nodes)-i)
	newSuffixBase = append(newSuffixBase, nodes[i+1].Beta(), nodes[i].Beta())
	for _, n := range nodes[i+2:] {
		newSuffixBase = append(newSuffixBase, n.Beta())
	}

	return rebuildSuffixFrom(ctx, c, i, newSuffixBase)
}
