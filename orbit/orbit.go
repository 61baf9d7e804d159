package orbit

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

// Orbit is the immutable orbit of Beta under some generator set: a bit
// set over points together with the starting point β that generated it.
// Invariant: β ∈ orbit, and for every k ∈ orbit and generator g, k·g ∈
// orbit.
type Orbit struct {
	beta point.Point
	bits *bitset.BitSet
}

// Beta returns the point this orbit was generated from.
func (o Orbit) Beta() point.Point {
	return o.beta
}

// Contains reports whether k lies in the orbit.
func (o Orbit) Contains(k point.Point) bool {
	if o.bits == nil {
		return k == o.beta
	}

	return o.bits.Test(uint(k))
}

// Len returns the orbit's size.
func (o Orbit) Len() int {
	if o.bits == nil {
		return 1
	}

	return int(o.bits.Count())
}

// Points returns the orbit's members in ascending order.
func (o Orbit) Points() []point.Point {
	out := make([]point.Point, 0, o.Len())
	if o.bits == nil {
		return append(out, o.beta)
	}
	for i, ok := o.bits.NextSet(0); ok; i, ok = o.bits.NextSet(i + 1) {
		out = append(out, point.Point(i))
	}

	return out
}

// Compute builds the orbit of beta under gens by breadth-first closure:
// start with {beta}, repeatedly apply every generator to every newly
// discovered point, and stop once a full pass adds nothing (§4.D).
func Compute(beta point.Point, gens []perm.Permutation) Orbit {
	bits := bitset.New(uint(beta) + 1)
	bits.Set(uint(beta))
	queue := []point.Point{beta}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			img := g.Image(cur)
			if !bits.Test(uint(img)) {
				bits.Set(uint(img))
				queue = append(queue, img)
			}
		}
	}

	return Orbit{beta: beta, bits: bits}
}

// FromPoints builds an Orbit directly from an already-known point set,
// for callers (transversal) that maintain their own closure and only
// need to expose it as an orbit.Orbit value.
func FromPoints(beta point.Point, points []point.Point) Orbit {
	bits := bitset.New(uint(beta) + 1)
	bits.Set(uint(beta))
	for _, p := range points {
		bits.Set(uint(p))
	}

	return Orbit{beta: beta, bits: bits}
}

// Updated extends o for an enlarged generator set (§4.D). It first
// expands the orbit by applying only newGens to the points already
// present, then closes that frontier under allGens. This two-phase shape
// avoids re-deriving images that the prior generator set already proved
// reachable.
//
// If newGens finds no point beyond o, the allGens closure pass is
// skipped entirely: o is already closed under the old generators, and
// a newGens that adds nothing can't make any old point reach further
// under allGens than it already does. The orbit invariant holds either
// way — only the points, not a full composition closure, are at stake
// here.
func (o Orbit) Updated(newGens, allGens []perm.Permutation) Orbit {
	bits := o.bits.Clone()
	if bits == nil {
		bits = bitset.New(uint(o.beta) + 1)
		bits.Set(uint(o.beta))
	}

	var frontier []point.Point
	for _, a := range o.Points() {
		for _, g := range newGens {
			img := g.Image(a)
			if !bits.Test(uint(img)) {
				bits.Set(uint(img))
				frontier = append(frontier, img)
			}
		}
	}

	queue := frontier
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, g := range allGens {
			img := g.Image(cur)
			if !bits.Test(uint(img)) {
				bits.Set(uint(img))
				queue = append(queue, img)
			}
		}
	}

	return Orbit{beta: o.beta, bits: bits}
}
