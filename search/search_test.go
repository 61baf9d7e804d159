package search_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/schreiersims"
	"github.com/dkrylov/bsgs/search"
)

func buildSym3(t *testing.T) chain.Chain {
	t.Helper()
	swap01, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	cyc012, err := perm.FromCycles([]int{0, 1, 2})
	require.NoError(t, err)

	c, err := schreiersims.BuildDeterministic(context.Background(), []perm.Permutation{swap01, cyc012}, big.NewInt(6))
	require.NoError(t, err)

	return c
}

func TestSearch_EnumeratesWholeGroup(t *testing.T) {
	c := buildSym3(t)

	def := search.SubgroupDefinition[perm.Permutation]{
		Identity: perm.Identity(0),
		Compose:  func(g perm.Permutation, step perm.Permutation) perm.Permutation { return step.Op(g) },
		InSubgroup: func(perm.Permutation) bool {
			return true
		},
		FirstLevelTest: func(chain.Chain) search.Test[perm.Permutation] {
			return search.AcceptAll[perm.Permutation]
		},
	}

	elems, err := search.Search(context.Background(), c, def)
	require.NoError(t, err)
	assert.Len(t, elems, 6)
}

func TestSearch_FiltersSubgroup(t *testing.T) {
	c := buildSym3(t)

	def := search.SubgroupDefinition[perm.Permutation]{
		Identity: perm.Identity(0),
		Compose:  func(g perm.Permutation, step perm.Permutation) perm.Permutation { return step.Op(g) },
		InSubgroup: func(g perm.Permutation) bool {
			return g.Sign() == 1
		},
		FirstLevelTest: func(chain.Chain) search.Test[perm.Permutation] {
			return search.AcceptAll[perm.Permutation]
		},
	}

	elems, err := search.Search(context.Background(), c, def)
	require.NoError(t, err)
	assert.Len(t, elems, 3)
	for _, g := range elems {
		assert.Equal(t, 1, g.Sign())
	}
}

func TestSearch_PruningTestRejectsEarly(t *testing.T) {
	c := buildSym3(t)

	var calls int
	def := search.SubgroupDefinition[perm.Permutation]{
		Identity: perm.Identity(0),
		Compose:  func(g perm.Permutation, step perm.Permutation) perm.Permutation { return step.Op(g) },
		InSubgroup: func(perm.Permutation) bool {
			return true
		},
		FirstLevelTest: func(chain.Chain) search.Test[perm.Permutation] {
			var rejectAll search.Test[perm.Permutation]
			rejectAll = func(level int, orbitImage point.Point, currentG perm.Permutation, node chain.Node) (search.Test[perm.Permutation], bool) {
				calls++

				return rejectAll, false
			}

			return rejectAll
		},
	}

	elems, err := search.Search(context.Background(), c, def)
	require.NoError(t, err)
	assert.Empty(t, elems)
	assert.Equal(t, c.Length() > 0, calls > 0)
}
