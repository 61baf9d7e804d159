package perm

import "github.com/dkrylov/bsgs/point"

// Op composes p and other under the right-action convention used
// throughout this library: k·(p·other) = (k·p)·other. Composition picks
// the narrowest encoding the product's actual support allows (§3's
// "shrink" requirement) by funneling through fromImageSlice exactly like
// every other constructor.
func (p Permutation) Op(other Permutation) Permutation {
	// Resolves §9's open question about the op3216 fast path: an
	// identity operand on either side returns the other operand
	// explicitly, with no implicit fallthrough.
	if other.IsIdentity() {
		return p
	}
	if p.IsIdentity() {
		return other
	}

	pMax, _ := p.SupportMax()
	oMax, _ := other.SupportMax()
	n := int(pMax)
	if int(oMax) > n {
		n = int(oMax)
	}
	n++ // length, not max index

	images := make([]int, n)
	for k := 0; k < n; k++ {
		g := p.Image(point.Point(k))
		images[k] = int(other.Image(g))
	}

	return fromImageSlice(images)
}

// Inverse returns the group inverse of p.
func (p Permutation) Inverse() Permutation {
	if p.IsIdentity() {
		return p
	}
	max, _ := p.SupportMax()
	n := int(max) + 1
	images := make([]int, n)
	for k := 0; k < n; k++ {
		images[k] = int(p.InvImage(point.Point(k)))
	}

	return fromImageSlice(images)
}
