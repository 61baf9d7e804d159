package group_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/group"
	"github.com/dkrylov/bsgs/partition"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

func TestFromGenerators_Sym5Order120(t *testing.T) {
	transposition, err := perm.FromCycles([]int{1, 2})
	require.NoError(t, err)
	longCycle, err := perm.FromCycles([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	g, err := group.FromGenerators(context.Background(), []perm.Permutation{transposition, longCycle})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(120), g.Order())

	transposition34, err := perm.FromCycles([]int{3, 4})
	require.NoError(t, err)
	assert.True(t, g.Contains(transposition34))
}

func TestFromImages_RejectsNonPermutationInput(t *testing.T) {
	_, err := perm.FromImages([]int{0, 1, 1, 3, 4})
	require.ErrorIs(t, err, perm.ErrInvalidPermutation)
}

func TestFromGeneratorsAndOrder_RejectsWrongOrder(t *testing.T) {
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)

	_, err = group.FromGeneratorsAndOrder(context.Background(), []perm.Permutation{swap01}, big.NewInt(99))
	require.Error(t, err)
}

func TestStabilizer_Sym4PointwisePair(t *testing.T) {
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	cyc0123, err := perm.FromCycles([]int{0, 1, 2, 3})
	require.NoError(t, err)

	g, err := group.FromGeneratorsAndOrder(context.Background(), []perm.Permutation{swap01, cyc0123}, big.NewInt(24))
	require.NoError(t, err)

	stab, err := g.Stabilizer(context.Background(), []point.Point{0, 1})
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(2), stab.Order())

	swap23, err := perm.FromCycles([]int{2, 3})
	require.NoError(t, err)
	assert.True(t, stab.Contains(swap23))
	assert.False(t, stab.Contains(swap01))
}

func TestStabilizer_RejectsDuplicatePoint(t *testing.T) {
	g, err := group.FromGenerators(context.Background(), nil)
	require.NoError(t, err)

	_, err = g.Stabilizer(context.Background(), []point.Point{0, 0})
	require.ErrorIs(t, err, group.ErrDuplicatePoint)
}

func TestUnorderedPartitionStabilizer_Sym4PairPartition(t *testing.T) {
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	cyc0123, err := perm.FromCycles([]int{0, 1, 2, 3})
	require.NoError(t, err)

	g, err := group.FromGeneratorsAndOrder(context.Background(), []perm.Permutation{swap01, cyc0123}, big.NewInt(24))
	require.NoError(t, err)

	pt, err := partition.New(4, [][]point.Point{{0, 1}, {2, 3}})
	require.NoError(t, err)

	stab, err := g.UnorderedPartitionStabilizer(context.Background(), pt)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(8), stab.Order())

	swap02And13, err := perm.FromCycles([]int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	swap02Only, err := perm.FromCycles([]int{0, 2})
	require.NoError(t, err)
	assert.True(t, stab.Contains(swap02And13))
	assert.False(t, stab.Contains(swap02Only))
}

func TestIntersection_Sym4EvenVsStabilizerOfPoint(t *testing.T) {
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	cyc0123, err := perm.FromCycles([]int{0, 1, 2, 3})
	require.NoError(t, err)

	sym4, err := group.FromGeneratorsAndOrder(context.Background(), []perm.Permutation{swap01, cyc0123}, big.NewInt(24))
	require.NoError(t, err)

	alt4Gens := []perm.Permutation{}
	cyc012, err := perm.FromCycles([]int{0, 1, 2})
	require.NoError(t, err)
	cyc123, err := perm.FromCycles([]int{1, 2, 3})
	require.NoError(t, err)
	alt4Gens = append(alt4Gens, cyc012, cyc123)
	alt4, err := group.FromGeneratorsAndOrder(context.Background(), alt4Gens, big.NewInt(12))
	require.NoError(t, err)

	stabPoint3, err := sym4.Stabilizer(context.Background(), []point.Point{3})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(6), stabPoint3.Order())

	inter, err := alt4.Intersection(context.Background(), stabPoint3)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(3), inter.Order())
}
