package transversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
	"github.com/dkrylov/bsgs/transversal"
)

func TestUpdated_Invariants(t *testing.T) {
	g, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	h, err := perm.FromCycles([]int{1, 2})
	require.NoError(t, err)

	tv := transversal.New(0)
	tv = tv.Updated([]perm.Permutation{g}, []perm.Permutation{g})
	tv = tv.Updated([]perm.Permutation{h}, []perm.Permutation{g, h})

	assert.Equal(t, 3, tv.Len())
	for alpha := 0; alpha < 3; alpha++ {
		u, ok := tv.U(point.Point(alpha))
		require.True(t, ok)
		assert.Equal(t, point.Point(alpha), u.Image(0), "beta*u(alpha) must equal alpha")

		uInv, ok := tv.UInv(point.Point(alpha))
		require.True(t, ok)
		assert.Equal(t, point.Point(0), uInv.Image(point.Point(alpha)), "alpha*uInv(alpha) must equal beta")
	}
}

func TestConjugate_MovesBeta(t *testing.T) {
	g, err := perm.FromCycles([]int{0, 1, 2})
	require.NoError(t, err)
	tv := transversal.New(0)
	tv = tv.Updated([]perm.Permutation{g}, []perm.Permutation{g})

	f, err := perm.FromCycles([]int{0, 3})
	require.NoError(t, err)
	fInv := f.Inverse()

	moved := tv.Conjugate(f, fInv)
	assert.Equal(t, f.Image(point.Point(0)), moved.Beta())
}
