package perm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

func mustCycles(t *testing.T, cycles ...[]int) perm.Permutation {
	t.Helper()
	p, err := perm.FromCycles(cycles...)
	require.NoError(t, err)

	return p
}

func TestFromImages_InvalidPermutation(t *testing.T) {
	_, err := perm.FromImages([]int{1, 1, 2})
	assert.True(t, errors.Is(err, perm.ErrInvalidPermutation))
}

func TestFromImages_RoundTrip(t *testing.T) {
	images := []int{2, 0, 1, 4, 3}
	g, err := perm.FromImages(images)
	require.NoError(t, err)

	for k, img := range images {
		assert.Equal(t, point.Point(img), g.Image(point.Point(k)))
	}
}

func TestCycleApplication_OneBased(t *testing.T) {
	// (1 3 2) · (1 2) applied to point 1 (1-based) yields 3.
	a := mustCycles(t, []int{0, 2, 1}) // (1 3 2) in 0-based points
	b := mustCycles(t, []int{0, 1})    // (1 2)
	prod := a.Op(b)

	one, err := point.Base1.ToInternal(1)
	require.NoError(t, err)
	img := prod.Image(one)
	assert.Equal(t, 3, point.Base1.FromInternal(img))

	inv := prod.Inverse()
	three, err := point.Base1.ToInternal(3)
	require.NoError(t, err)
	assert.Equal(t, 1, point.Base1.FromInternal(inv.Image(three)))
}

func TestImage_BeyondSupportIsIdentity(t *testing.T) {
	g := mustCycles(t, []int{0, 1})
	assert.Equal(t, point.Point(100), g.Image(point.Point(100)))
}

func TestInverse_Involution(t *testing.T) {
	g := mustCycles(t, []int{2, 0, 4, 1})
	gg := g.Inverse().Inverse()
	assert.True(t, g.Equals(gg))
}

func TestInverse_RoundTrip(t *testing.T) {
	g := mustCycles(t, []int{0, 2, 4}, []int{1, 3})
	inv := g.Inverse()
	for k := 0; k < 6; k++ {
		img := g.Image(point.Point(k))
		assert.Equal(t, point.Point(k), inv.Image(img))
		assert.Equal(t, point.Point(k), g.InvImage(img))
	}
}

func TestAssociativity(t *testing.T) {
	g := mustCycles(t, []int{0, 1, 2})
	h := mustCycles(t, []int{1, 3})
	k := mustCycles(t, []int{0, 4})
	lhs := g.Op(h).Op(k)
	rhs := g.Op(h.Op(k))
	assert.True(t, lhs.Equals(rhs))
}

func TestSign(t *testing.T) {
	id := perm.Identity(5)
	assert.Equal(t, 1, id.Sign())

	transposition := mustCycles(t, []int{0, 1})
	assert.Equal(t, -1, transposition.Sign())

	threeCycle := mustCycles(t, []int{0, 1, 2})
	assert.Equal(t, 1, threeCycle.Sign())

	assert.Equal(t, 1, transposition.Sign()*transposition.Inverse().Sign())
}

func TestEquals_TrailingIdentityIgnored(t *testing.T) {
	small := mustCycles(t, []int{0, 1})
	images := []int{1, 0, 2, 3, 4, 5}
	padded, err := perm.FromImages(images)
	require.NoError(t, err)
	assert.True(t, small.Equals(padded))
	assert.Equal(t, small.Hash(), padded.Hash())
}

func TestEncodingShrink_Identity(t *testing.T) {
	images := make([]int, 21)
	for i := range images {
		images[i] = i
	}
	for i := 0; i < 20; i++ {
		images[i], images[20-1-i] = images[20-1-i], images[i]
	}
	g, err := perm.FromImages(images)
	require.NoError(t, err)
	prod := g.Op(g.Inverse())
	assert.True(t, prod.IsIdentity(), "product of g and its inverse must be the identity")
}

func TestString_Identity(t *testing.T) {
	assert.Equal(t, "()", perm.Identity(5).String())
}

func TestString_DisjointCycles(t *testing.T) {
	g := mustCycles(t, []int{0, 2, 4}, []int{1, 3})
	s := g.String()
	assert.Contains(t, s, "(0 2 4)")
	assert.Contains(t, s, "(1 3)")
}

func TestSupportMinMax(t *testing.T) {
	g := mustCycles(t, []int{2, 5})
	min, ok := g.SupportMin()
	require.True(t, ok)
	assert.Equal(t, point.Point(2), min)
	max, ok := g.SupportMax()
	require.True(t, ok)
	assert.Equal(t, point.Point(5), max)
}

func TestSupportMinMax_IdentityIsNone(t *testing.T) {
	id := perm.Identity(4)
	_, ok := id.SupportMin()
	assert.False(t, ok)
	_, ok = id.SupportMax()
	assert.False(t, ok)
}

// TestNarrowSupportBelowWideThreshold resolves the open question about
// toPerm16-shaped downgrades: two wide ("Perm32") operands whose product's
// support lies entirely below 12 (the first wide-word boundary) must
// still compose to the correct permutation.
func TestNarrowSupportBelowWideThreshold(t *testing.T) {
	g := mustCycles(t, []int{1, 3, 5}, []int{20, 21})
	h := mustCycles(t, []int{20, 21})
	prod := g.Op(h)
	assert.True(t, prod.Equals(mustCycles(t, []int{1, 3, 5})))
}

func TestSym5_Order120ByEnumeration(t *testing.T) {
	// Sanity check on the generating set used by the Grp-level Sym(5)
	// scenario (§8 concrete scenario 1): closing {id} under right
	// multiplication by a transposition and a full cycle enumerates all
	// 120 elements of the symmetric group.
	transposition := mustCycles(t, []int{0, 1})
	fullCycle := mustCycles(t, []int{0, 1, 2, 3, 4})
	assert.False(t, transposition.Equals(fullCycle))

	elems := []perm.Permutation{perm.Identity(0)}
	for i := 0; i < len(elems); i++ {
		for _, s := range []perm.Permutation{transposition, fullCycle} {
			next := elems[i].Op(s)
			seen := false
			for _, e := range elems {
				if e.Equals(next) {
					seen = true

					break
				}
			}
			if !seen {
				elems = append(elems, next)
			}
		}
	}
	assert.Len(t, elems, 120)
}
