package perm

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dkrylov/bsgs/point"
)

// SupportMaxElement returns an upper bound on SupportMax that this
// Permutation's encoding can represent (§3). Identity can represent any
// point without overflow, so it reports the largest value a point can
// hold in practice.
func (p Permutation) SupportMaxElement() point.Point {
	switch p.kind {
	case kindSmall:
		return point.Point(smallMaxPoint)
	case kindWide:
		return point.Point(wideMaxPoint)
	case kindArray8:
		return point.Point(len(p.arr8) - 1)
	case kindArray16:
		return point.Point(len(p.arr16) - 1)
	case kindArray32:
		return point.Point(len(p.arr32) - 1)
	default: // kindIdentity
		return point.Point(int(^uint(0) >> 1))
	}
}

// Image returns the image of point k under p, or k itself if k exceeds
// SupportMaxElement (the identity-beyond-support rule of §3).
func (p Permutation) Image(k point.Point) point.Point {
	kk := int(k)
	switch p.kind {
	case kindSmall:
		if kk > smallMaxPoint {
			return k
		}

		return point.Point(smallDecode(p.small, kk))
	case kindWide:
		if kk > wideMaxPoint {
			return k
		}

		return point.Point(wideDecode(p.wide, kk))
	case kindArray8:
		if kk >= len(p.arr8) {
			return k
		}

		return point.Point(p.arr8[kk])
	case kindArray16:
		if kk >= len(p.arr16) {
			return k
		}

		return point.Point(p.arr16[kk])
	case kindArray32:
		if kk >= len(p.arr32) {
			return k
		}

		return point.Point(p.arr32[kk])
	default: // kindIdentity
		return k
	}
}

// InvImage returns the preimage of point k under p: the unique j with
// p.Image(j) == k. It is the identity outside the support.
func (p Permutation) InvImage(k point.Point) point.Point {
	kk := int(k)
	switch p.kind {
	case kindSmall:
		if kk > smallMaxPoint {
			return k
		}

		return point.Point(smallDecode(p.invSmall, kk))
	case kindWide:
		if kk > wideMaxPoint {
			return k
		}

		return point.Point(wideDecode(p.invWide, kk))
	case kindArray8:
		if kk >= len(p.invArr8) {
			return k
		}

		return point.Point(p.invArr8[kk])
	case kindArray16:
		if kk >= len(p.invArr16) {
			return k
		}

		return point.Point(p.invArr16[kk])
	case kindArray32:
		if kk >= len(p.invArr32) {
			return k
		}

		return point.Point(p.invArr32[kk])
	default: // kindIdentity
		return k
	}
}

// scanBound returns one past the highest point index worth scanning when deriving
// Support/SupportMin/SupportMax: the fixed slot width for bit-packed
// encodings, or the array length for array encodings.
func (p Permutation) scanBound() int {
	switch p.kind {
	case kindSmall:
		return smallSlots
	case kindWide:
		return wideSlots
	case kindArray8:
		return len(p.arr8)
	case kindArray16:
		return len(p.arr16)
	case kindArray32:
		return len(p.arr32)
	default:
		return 0
	}
}

// supportBitset computes the moved-point set as a dynamically-sized bit
// set (github.com/bits-and-blooms/bitset), the dense, allocation-cheap
// structure §3's Orbit component also builds on.
func (p Permutation) supportBitset() *bitset.BitSet {
	bound := p.scanBound()
	bs := bitset.New(uint(bound))
	for k := 0; k < bound; k++ {
		if p.Image(point.Point(k)) != point.Point(k) {
			bs.Set(uint(k))
		}
	}

	return bs
}

// Support returns the set of points p moves, sorted ascending.
func (p Permutation) Support() []point.Point {
	if p.kind == kindIdentity {
		return nil
	}
	bs := p.supportBitset()
	out := make([]point.Point, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, point.Point(i))
	}

	return out
}

// SupportMin returns the smallest moved point and true, or (0, false) if
// p is the identity.
func (p Permutation) SupportMin() (point.Point, bool) {
	if p.kind == kindIdentity {
		return 0, false
	}
	bs := p.supportBitset()
	i, ok := bs.NextSet(0)

	return point.Point(i), ok
}

// SupportMax returns the largest moved point and true, or (0, false) if
// p is the identity.
func (p Permutation) SupportMax() (point.Point, bool) {
	if p.kind == kindIdentity {
		return 0, false
	}
	bs := p.supportBitset()
	found := false
	var max uint
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		max = i
		found = true
	}
	if !found {
		return 0, false
	}

	return point.Point(max), true
}

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	return p.kind == kindIdentity
}

// Sign returns +1 if p is an even product of transpositions, -1 if odd,
// computed by the standard cycle-decomposition parity count (§4.C):
// peel off each cycle in the support, flipping parity on every step
// after the first in that cycle.
func (p Permutation) Sign() int {
	bound := p.scanBound()
	if bound == 0 {
		return 1
	}
	visited := make([]bool, bound)
	sign := 1
	for start := 0; start < bound; start++ {
		if visited[start] {
			continue
		}
		// Walk the cycle containing start.
		cur := start
		length := 0
		for !visited[cur] {
			visited[cur] = true
			cur = int(p.Image(point.Point(cur)))
			length++
		}
		if length > 1 && (length-1)%2 == 1 {
			sign = -sign
		}
	}

	return sign
}

// Equals reports whether p and other agree as functions on [0, ∞):
// equality is encoding-independent, and two Permutations differing only
// in trailing identity compare equal.
func (p Permutation) Equals(other Permutation) bool {
	bound := p.scanBound()
	if ob := other.scanBound(); ob > bound {
		bound = ob
	}
	for k := 0; k < bound; k++ {
		if p.Image(point.Point(k)) != other.Image(point.Point(k)) {
			return false
		}
	}

	return true
}

// Hash mixes image values over [0, supportMax+1) with a stable seed, so
// that (per §6) hashing agrees with Equals across encodings and trailing
// identity never changes the result.
func (p Permutation) Hash() uint64 {
	const seed uint64 = 0x9E3779B97F4A7C15
	max, ok := p.SupportMax()
	if !ok {
		return seed
	}
	h := seed
	for k := 0; k <= int(max); k++ {
		img := uint64(p.Image(point.Point(k)))
		h ^= img + seed
		h = (h << 13) | (h >> 51)
		h *= 0xFF51AFD7ED558CCD
	}

	return h
}
