package search

import (
	"github.com/dkrylov/bsgs/basechange"
	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

// Test is an immutable predicate evaluated at one level of the descent
// (§4.I). Given the level, the candidate orbit image at that level, the
// partial product assembled so far, and the chain node being descended
// into, it returns the Test to use at the next level and whether to
// continue (ok=true) or prune this subtree (ok=false). Pruning
// invariant: once Test returns ok=false for a prefix, no extension of
// that prefix lies in the subgroup being searched for.
type Test[G any] func(level int, orbitImage point.Point, currentG G, node chain.Node) (next Test[G], ok bool)

// AcceptAll is the trivial Test that prunes nothing — useful as a
// FirstLevelTest when every filtering happens in InSubgroup instead.
func AcceptAll[G any](_ int, _ point.Point, _ G, _ chain.Node) (Test[G], bool) {
	return Test[G](AcceptAll[G]), true
}

// SubgroupDefinition bundles everything Search needs to enumerate
// H = { g ∈ G : InSubgroup(g) } over a chain (§4.I).
type SubgroupDefinition[G any] struct {
	// Identity is the empty partial product the descent starts from.
	Identity G

	// Compose extends a partial product by one more transversal/own
	// generator step, under whatever representation G uses. step must be
	// prepended before g (the concrete perm.Permutation case returns
	// step.Op(g), never g.Op(step)): every deeper transversal element
	// fixes the base points processed so far, so prepending it leaves
	// their images in currentG untouched for the rest of the descent —
	// that stability is what lets a Test prune on a base point's image
	// before the leaf is reached. Appending instead would let later
	// steps move an already-decided image, breaking early pruning.
	Compose func(g G, step perm.Permutation) G

	// InSubgroup makes the final membership decision on a fully
	// assembled element at the leaf.
	InSubgroup func(g G) bool

	// BaseGuideOpt, if non-nil, advises a base change Search should
	// apply (via basechange.ChangeBase) before descending, to put the
	// chain's base in an order that lets Test prune earlier.
	BaseGuideOpt basechange.Guide

	// FirstLevelTest constructs the Test to use at level 0, seeded
	// with whatever invariants the whole chain lets it precompute.
	FirstLevelTest func(c chain.Chain) Test[G]
}
