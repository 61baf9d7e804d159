package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/orbit"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

func TestCompute_Sym5OrbitOfZero(t *testing.T) {
	transposition, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	fullCycle, err := perm.FromCycles([]int{0, 1, 2, 3, 4})
	require.NoError(t, err)

	o := orbit.Compute(0, []perm.Permutation{transposition, fullCycle})
	assert.Equal(t, 5, o.Len())
	for k := 0; k < 5; k++ {
		assert.True(t, o.Contains(point.Point(k)))
	}
	assert.False(t, o.Contains(point.Point(5)))
}

func TestCompute_TrivialOrbit(t *testing.T) {
	id := perm.Identity(5)
	o := orbit.Compute(2, []perm.Permutation{id})
	assert.Equal(t, []point.Point{2}, o.Points())
}

func TestUpdated_GrowsOrbit(t *testing.T) {
	g, err := perm.FromCycles([]int{0, 1})
	require.NoError(t, err)
	base := orbit.Compute(0, []perm.Permutation{g})
	assert.Equal(t, 2, base.Len())

	h, err := perm.FromCycles([]int{1, 2})
	require.NoError(t, err)
	grown := base.Updated([]perm.Permutation{h}, []perm.Permutation{g, h})
	assert.Equal(t, 3, grown.Len())
	for k := 0; k < 3; k++ {
		assert.True(t, grown.Contains(point.Point(k)))
	}
}
