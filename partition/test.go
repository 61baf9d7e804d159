package partition

import (
	"github.com/dkrylov/bsgs/basechange"
	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/search"
)

// blockImages is the partial map block(base point) -> block(its image)
// threaded through a descent (§4.J).
type blockImages map[int]int

func cloneBlockImages(m blockImages) blockImages {
	out := make(blockImages, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Test returns the search.Test that prunes a descent as soon as a base
// point's candidate image can't possibly preserve the partition.
//
// At every level it checks the level's base point against the running
// blockImages map. The base point's image under the finished element is
// orbitImage·currentG (every deeper step fixes beta), so that is the
// point whose block is compared: if block(beta) is already fixed to some
// image block, it must land in that same block; otherwise it extends
// the map. This is a sound but deliberately incomplete filter —
// it only reasons about points that are themselves base points. Two base
// points sharing a search.BasePointGroups run are each checked against
// the same map entry in turn, which is equivalent to verifying the whole
// run at once, just spread across that many Test calls instead of one.
// Points that share a block with a base point without being base points
// themselves aren't reasoned about here at all; InvariantHolds at the
// leaf is the authority that catches those, so pruning here never
// rejects a g that would actually pass InvariantHolds.
func (pt Partition) Test() search.Test[perm.Permutation] {
	return pt.test(blockImages{})
}

func (pt Partition) test(images blockImages) search.Test[perm.Permutation] {
	return func(level int, orbitImage point.Point, currentG perm.Permutation, node chain.Node) (search.Test[perm.Permutation], bool) {
		beta := node.Beta()
		fromBlock := pt.IndexOf(beta)
		toBlock := pt.IndexOf(currentG.Image(orbitImage))
		if fromBlock == -1 || toBlock == -1 {
			return nil, false
		}

		next := cloneBlockImages(images)
		if existing, ok := next[fromBlock]; ok {
			if existing != toBlock {
				return nil, false
			}
		} else {
			next[fromBlock] = toBlock
		}

		return pt.test(next), true
	}
}

// Guide orders a base so that points lying in the same block stay
// contiguous where possible, forming the base-point groups Test and
// search.BasePointGroups reason about. It prefers a candidate in the
// block of the most recently fixed base point, falling back to whatever
// basechange.ChangeBase offers first.
func (pt Partition) Guide() basechange.Guide {
	return blockGroupingGuide{pt: pt}
}

type blockGroupingGuide struct {
	pt Partition
}

func (g blockGroupingGuide) Next(candidates, fixed []point.Point) (point.Point, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	if len(fixed) > 0 {
		wantBlock := g.pt.IndexOf(fixed[len(fixed)-1])
		for _, c := range candidates {
			if g.pt.IndexOf(c) == wantBlock {
				return c, true
			}
		}
	}

	return candidates[0], true
}

// StabilizerDefinition builds the search.SubgroupDefinition that
// enumerates the partition's stabilizer: candidates are pruned early by
// Test, reshaped onto Guide's base ordering, and accepted at the leaf by
// InvariantHolds.
func (pt Partition) StabilizerDefinition() search.SubgroupDefinition[perm.Permutation] {
	return search.SubgroupDefinition[perm.Permutation]{
		Identity: perm.Identity(0),
		Compose: func(g perm.Permutation, step perm.Permutation) perm.Permutation {
			return step.Op(g)
		},
		InSubgroup: func(g perm.Permutation) bool {
			return pt.InvariantHolds(g)
		},
		BaseGuideOpt: pt.Guide(),
		FirstLevelTest: func(chain.Chain) search.Test[perm.Permutation] {
			return pt.Test()
		},
	}
}
