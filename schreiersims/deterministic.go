package schreiersims

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/transversal"
)

// BuildDeterministic grows a BSGS chain for gens top-down (§4.G): at
// each node, it enumerates every Schreier generator u(α)·s·uInv(α·s),
// sifts it through the whole chain, and whenever the residual is not
// the identity, extends the level where sifting failed (appending a
// new one past the current tail if necessary). It repeats full passes
// until one finds nothing left to add.
//
// If targetOrder is non-nil, the resulting chain's order is checked
// against it; a mismatch returns ErrIncompleteChain.
func BuildDeterministic(ctx context.Context, gens []perm.Permutation, targetOrder *big.Int, opts ...Option) (chain.Chain, error) {
	cfg := resolveOptions(opts)
	cfg.Ctx = ctxOrBackground(ctx, cfg.Ctx)

	m := chain.NewMutableChain()
	strongGens := nonIdentityDedup(gens)
	seedBase(m, strongGens, cfg.BaseHint)

	for {
		if err := checkCancel(cfg); err != nil {
			return chain.Chain{}, err
		}

		extended, err := deterministicPass(m)
		if err != nil {
			return chain.Chain{}, err
		}
		if !extended {
			break
		}
	}

	trimTrivialTail(m)
	c := m.Freeze()

	if targetOrder != nil && c.Order().Cmp(targetOrder) != 0 {
		return chain.Chain{}, fmt.Errorf("schreiersims: BuildDeterministic: order %s, want %s: %w", c.Order(), targetOrder, ErrIncompleteChain)
	}

	return c, nil
}

// deterministicPass runs one full scan over every current node's orbit
// and generators, extending m wherever a Schreier generator fails to
// sift. It returns whether anything was extended, so the caller knows
// whether another pass is needed.
func deterministicPass(m *chain.MutableChain) (bool, error) {
	extended := false
	for i := 0; i < m.Len(); i++ {
		_, trans, _ := m.At(i)
		levelGens := ownGeneratorsFrom(m, i)
		for _, alpha := range trans.Orbit().Points() {
			uAlpha, ok := trans.U(alpha)
			if !ok {
				return false, fmt.Errorf("schreiersims: deterministicPass: %w", chain.ErrInvariantViolation)
			}
			for _, s := range levelGens {
				img := s.Image(alpha)
				uInvImg, ok := trans.UInv(img)
				if !ok {
					return false, fmt.Errorf("schreiersims: deterministicPass: orbit not closed under own generator: %w", chain.ErrInvariantViolation)
				}

				schreierGen := uAlpha.Op(s).Op(uInvImg)
				if schreierGen.IsIdentity() {
					continue
				}

				level, residual := siftThroughMutable(m, schreierGen)
				if residual.IsIdentity() {
					continue
				}

				extended = true
				if level == m.Len() {
					beta := pickNewBasePoint(residual, m.Base())
					m.PushBack(beta, transversal.New(beta), nil)
				}
				extendLevel(m, level, residual)
			}
		}
	}

	return extended, nil
}

func ctxOrBackground(ctx, fallback context.Context) context.Context {
	if ctx != nil {
		return ctx
	}

	return fallback
}
