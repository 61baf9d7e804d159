package group

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dkrylov/bsgs/basechange"
	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/partition"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/rng"
	"github.com/dkrylov/bsgs/schreiersims"
	"github.com/dkrylov/bsgs/search"
)

// Grp is an immutable permutation group handle, backed by a frozen BSGS
// chain (§4.K). The zero value is the trivial group.
type Grp struct {
	c chain.Chain
}

// FromGenerators builds, verifies, and freezes a group from gens via
// deterministic Schreier–Sims. No target order is checked.
func FromGenerators(ctx context.Context, gens []perm.Permutation) (Grp, error) {
	c, err := schreiersims.BuildDeterministic(ctx, gens, nil)
	if err != nil {
		return Grp{}, fmt.Errorf("group: FromGenerators: %w", err)
	}

	return Grp{c: c}, nil
}

// FromGeneratorsAndOrder builds a group from gens the same way
// FromGenerators does, additionally verifying the constructed chain's
// order matches order. A mismatch surfaces schreiersims.ErrIncompleteChain.
func FromGeneratorsAndOrder(ctx context.Context, gens []perm.Permutation, order *big.Int) (Grp, error) {
	c, err := schreiersims.BuildDeterministic(ctx, gens, order)
	if err != nil {
		return Grp{}, fmt.Errorf("group: FromGeneratorsAndOrder: %w", err)
	}

	return Grp{c: c}, nil
}

// Order returns |G|.
func (g Grp) Order() *big.Int { return g.c.Order() }

// Contains reports whether h is an element of G.
func (g Grp) Contains(h perm.Permutation) bool { return g.c.Sifts(h) }

// RandomElement returns a uniform random element of G, drawn via r.
func (g Grp) RandomElement(r rng.Rng) perm.Permutation { return g.c.RandomElement(r) }

// Chain exposes the handle's backing chain read-only, for callers that
// need direct chain-level access (e.g. feeding it back into search or
// basechange).
func (g Grp) Chain() chain.Chain { return g.c }

// Stabilizer returns the pointwise stabilizer of set: the subgroup of
// every g ∈ G fixing every point of set. It reshapes G's chain so set's
// points lead the base, then returns the tail of that chain — the
// subgroup fixing exactly those base points — as a fresh Grp.
func (g Grp) Stabilizer(ctx context.Context, set []point.Point) (Grp, error) {
	if len(set) == 0 {
		return g, nil
	}
	if dup := firstDuplicate(set); dup != nil {
		return Grp{}, fmt.Errorf("group: Stabilizer: point %v: %w", *dup, ErrDuplicatePoint)
	}

	reshaped, err := basechange.ChangeBase(ctx, g.c, basechange.NewFixedOrderGuide(set))
	if err != nil {
		return Grp{}, fmt.Errorf("group: Stabilizer: %w", err)
	}

	nodes := reshaped.Nodes()
	if len(nodes) < len(set) {
		return Grp{}, fmt.Errorf("group: Stabilizer: %w", chain.ErrInvariantViolation)
	}

	m := chain.NewMutableChain()
	for _, n := range nodes[len(set):] {
		m.PushBack(n.Beta(), n.Transversal(), n.OwnGenerators())
	}

	return Grp{c: m.Freeze()}, nil
}

// Intersection returns the subgroup G ∩ other, built by enumerating every
// element of G that other also contains and taking that enumeration as a
// (non-minimal but correct) generating set for the result.
func (g Grp) Intersection(ctx context.Context, other Grp) (Grp, error) {
	def := search.SubgroupDefinition[perm.Permutation]{
		Identity: perm.Identity(0),
		Compose: func(cur perm.Permutation, step perm.Permutation) perm.Permutation {
			return step.Op(cur)
		},
		InSubgroup: func(cand perm.Permutation) bool {
			return other.Contains(cand)
		},
		FirstLevelTest: func(chain.Chain) search.Test[perm.Permutation] {
			return search.AcceptAll[perm.Permutation]
		},
	}

	elems, err := search.Search(ctx, g.c, def)
	if err != nil {
		return Grp{}, fmt.Errorf("group: Intersection: %w", err)
	}

	out, err := FromGeneratorsAndOrder(ctx, elems, big.NewInt(int64(len(elems))))
	if err != nil {
		return Grp{}, fmt.Errorf("group: Intersection: %w", err)
	}

	return out, nil
}

// UnorderedPartitionStabilizer returns the subgroup of every g ∈ G that
// preserves pt (§4.J): sends every block to some block as a whole.
func (g Grp) UnorderedPartitionStabilizer(ctx context.Context, pt partition.Partition) (Grp, error) {
	elems, err := search.Search(ctx, g.c, pt.StabilizerDefinition())
	if err != nil {
		return Grp{}, fmt.Errorf("group: UnorderedPartitionStabilizer: %w", err)
	}

	out, err := FromGeneratorsAndOrder(ctx, elems, big.NewInt(int64(len(elems))))
	if err != nil {
		return Grp{}, fmt.Errorf("group: UnorderedPartitionStabilizer: %w", err)
	}

	return out, nil
}

func firstDuplicate(pts []point.Point) *point.Point {
	seen := make(map[point.Point]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			return &p
		}
		seen[p] = true
	}

	return nil
}
