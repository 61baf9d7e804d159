package schreiersims

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/rng"
	"github.com/dkrylov/bsgs/transversal"
)

// BuildRandomized grows a BSGS chain by sampling candidate elements from
// oracle instead of enumerating Schreier generators (§4.G): each sample
// is sifted through the chain; a non-identity residual extends the
// level where sifting failed. Construction stops once the chain's order
// equals targetOrder.
//
// Because a biased oracle is not guaranteed to ever reach targetOrder,
// the loop is bounded by Options.MaxRandomTrials; exhausting the budget
// returns ErrIncompleteChain. Callers on a verified path should pair
// this with a BuildDeterministic fallback, per §4.G.
func BuildRandomized(ctx context.Context, gens []perm.Permutation, targetOrder *big.Int, oracle rng.RandomElementOracle[perm.Permutation], r rng.Rng, opts ...Option) (chain.Chain, error) {
	if targetOrder == nil {
		return chain.Chain{}, fmt.Errorf("schreiersims: BuildRandomized: target order is required: %w", ErrIncompleteChain)
	}

	cfg := resolveOptions(opts)
	cfg.Ctx = ctxOrBackground(ctx, cfg.Ctx)

	m := chain.NewMutableChain()
	strongGens := nonIdentityDedup(gens)
	seedBase(m, strongGens, cfg.BaseHint)

	trials := 0
	for mutableOrder(m).Cmp(targetOrder) != 0 {
		if err := checkCancel(cfg); err != nil {
			return chain.Chain{}, err
		}
		if trials >= cfg.MaxRandomTrials {
			return chain.Chain{}, fmt.Errorf("schreiersims: BuildRandomized: exhausted %d trials short of order %s: %w", trials, targetOrder, ErrIncompleteChain)
		}
		trials++

		g := oracle(r)
		level, residual := siftThroughMutable(m, g)
		if residual.IsIdentity() {
			continue
		}

		if level == m.Len() {
			beta := pickNewBasePoint(residual, m.Base())
			m.PushBack(beta, transversal.New(beta), nil)
		}
		extendLevel(m, level, residual)
	}

	trimTrivialTail(m)
	c := m.Freeze()

	if c.Order().Cmp(targetOrder) != 0 {
		return chain.Chain{}, fmt.Errorf("schreiersims: BuildRandomized: order %s, want %s: %w", c.Order(), targetOrder, ErrIncompleteChain)
	}

	return c, nil
}
