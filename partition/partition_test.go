package partition_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/partition"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/schreiersims"
	"github.com/dkrylov/bsgs/search"
)

func buildSym4(t *testing.T) chain.Chain {
	t.Helper()
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	cyc0123, err := perm.FromCycles([]int{0, 1, 2, 3})
	require.NoError(t, err)

	c, err := schreiersims.BuildDeterministic(context.Background(), []perm.Permutation{swap01, cyc0123}, big.NewInt(24))
	require.NoError(t, err)

	return c
}

func TestNew_RejectsOverlappingBlocks(t *testing.T) {
	_, err := partition.New(4, [][]point.Point{{0, 1}, {1, 2}, {3}})
	require.ErrorIs(t, err, partition.ErrOverlappingBlocks)
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := partition.New(4, [][]point.Point{{0, 1}, {2, 7}})
	require.ErrorIs(t, err, partition.ErrPointOutOfRange)
}

func TestNew_RejectsIncompletePartition(t *testing.T) {
	_, err := partition.New(4, [][]point.Point{{0, 1}})
	require.ErrorIs(t, err, partition.ErrIncompletePartition)
}

func TestNew_RejectsEmptyBlock(t *testing.T) {
	_, err := partition.New(4, [][]point.Point{{0, 1}, {}, {2, 3}})
	require.ErrorIs(t, err, partition.ErrEmptyBlock)
}

func TestInvariantHolds(t *testing.T) {
	pt, err := partition.New(4, [][]point.Point{{0, 1}, {2, 3}})
	require.NoError(t, err)

	swap02And13, err := perm.FromCycles([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.True(t, pt.InvariantHolds(swap02And13))

	swap02Only, err := perm.FromCycles([]int{0, 2})
	require.NoError(t, err)
	assert.False(t, pt.InvariantHolds(swap02Only))
}

func TestStabilizerDefinition_Sym4PairPartition(t *testing.T) {
	c := buildSym4(t)
	pt, err := partition.New(4, [][]point.Point{{0, 1}, {2, 3}})
	require.NoError(t, err)

	elems, err := search.Search(context.Background(), c, pt.StabilizerDefinition())
	require.NoError(t, err)
	require.Len(t, elems, 8)

	for _, g := range elems {
		assert.True(t, pt.InvariantHolds(g))
	}

	swap02And13, err := perm.FromCycles([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	swap02Only, err := perm.FromCycles([]int{0, 2})
	require.NoError(t, err)

	var foundWanted, foundUnwanted bool
	for _, g := range elems {
		if g.Equals(swap02And13) {
			foundWanted = true
		}
		if g.Equals(swap02Only) {
			foundUnwanted = true
		}
	}
	assert.True(t, foundWanted, "(0 2)(1 3) should stabilize the partition")
	assert.False(t, foundUnwanted, "(0 2) should not stabilize the partition")
}

func TestBlockAndNext(t *testing.T) {
	pt, err := partition.New(4, [][]point.Point{{0, 1}, {2, 3}})
	require.NoError(t, err)

	assert.Equal(t, 2, pt.NumBlocks())
	assert.ElementsMatch(t, []point.Point{0, 1}, pt.Block(0))
	assert.ElementsMatch(t, []point.Point{2, 3}, pt.Block(1))

	_, ok := pt.Next(1)
	assert.False(t, ok)
}
