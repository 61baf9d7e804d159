package search

import (
	"context"
	"fmt"

	"github.com/dkrylov/bsgs/basechange"
	"github.com/dkrylov/bsgs/chain"
)

// Search walks c depth-first under def, enumerating every element for
// which every intermediate Test accepts and the final InSubgroup check
// holds (§4.I). If def.BaseGuideOpt is set, the chain is reshaped with
// basechange.ChangeBase before descending.
func Search[G any](ctx context.Context, c chain.Chain, def SubgroupDefinition[G]) ([]G, error) {
	if def.BaseGuideOpt != nil {
		reshaped, err := basechange.ChangeBase(ctx, c, def.BaseGuideOpt)
		if err != nil {
			return nil, fmt.Errorf("search: Search: reshaping base: %w", err)
		}
		c = reshaped
	}

	nodes := c.Nodes()
	var results []G

	var descend func(level int, currentG G, test Test[G]) error
	descend = func(level int, currentG G, test Test[G]) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if level == len(nodes) {
			if def.InSubgroup(currentG) {
				results = append(results, currentG)
			}

			return nil
		}

		node := nodes[level]
		for _, alpha := range node.Transversal().Orbit().Points() {
			nextTest, ok := test(level, alpha, currentG, node)
			if !ok {
				continue
			}

			step, found := node.Transversal().U(alpha)
			if !found {
				return fmt.Errorf("search: Search: level %d image %v: %w", level, alpha, chain.ErrInvariantViolation)
			}

			if err := descend(level+1, def.Compose(currentG, step), nextTest); err != nil {
				return err
			}
		}

		return nil
	}

	test0 := def.FirstLevelTest(c)
	if err := descend(0, def.Identity, test0); err != nil {
		return nil, err
	}

	return results, nil
}
