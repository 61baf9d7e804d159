package transversal

import (
	"github.com/dkrylov/bsgs/orbit"
	"github.com/dkrylov/bsgs/perm"
	"github.com/dkrylov/bsgs/point"
)

// Transversal maps each point α in the orbit of Beta to a coset
// representative U(α) with Beta·U(α) = α, and to its inverse UInv(α).
// Invariants: U(Beta) = UInv(Beta) = identity; for every generator s and
// every α in the orbit, α·s is in the orbit, and
// U(α)·s·UInv(α·s) stabilizes Beta.
type Transversal struct {
	beta point.Point
	u    map[point.Point]perm.Permutation
	uInv map[point.Point]perm.Permutation
}

// New returns the trivial transversal for beta: orbit {beta}, with
// U(beta) = UInv(beta) = identity.
func New(beta point.Point) Transversal {
	return Transversal{
		beta: beta,
		u:    map[point.Point]perm.Permutation{beta: perm.Identity(0)},
		uInv: map[point.Point]perm.Permutation{beta: perm.Identity(0)},
	}
}

// Beta returns the base point this transversal is rooted at.
func (t Transversal) Beta() point.Point {
	return t.beta
}

// Contains reports whether alpha is in the orbit covered by this
// transversal.
func (t Transversal) Contains(alpha point.Point) bool {
	_, ok := t.u[alpha]

	return ok
}

// U returns the coset representative for alpha, and whether alpha is in
// the orbit at all.
func (t Transversal) U(alpha point.Point) (perm.Permutation, bool) {
	p, ok := t.u[alpha]

	return p, ok
}

// UInv returns the inverse of U(alpha), and whether alpha is in the
// orbit at all.
func (t Transversal) UInv(alpha point.Point) (perm.Permutation, bool) {
	p, ok := t.uInv[alpha]

	return p, ok
}

// Orbit exposes the transversal's backing point set as an orbit.Orbit.
func (t Transversal) Orbit() orbit.Orbit {
	points := make([]point.Point, 0, len(t.u))
	for a := range t.u {
		points = append(points, a)
	}

	return orbit.FromPoints(t.beta, points)
}

// Len returns the number of points this transversal currently covers.
func (t Transversal) Len() int {
	return len(t.u)
}

// Updated extends t for an enlarged generator set (§4.E): for each new
// generator s and each α already in the orbit, compute α·s; if it is
// not yet present, record (U(α)·s, s⁻¹·UInv(α)) as the new entry. Then
// close that frontier under all generators by the same rule — the same
// two-phase shape orbit.Updated uses. If newGens reaches no point beyond
// t, the closure pass is skipped: t is already closed under the old
// generators, so there is nothing new to close.
func (t Transversal) Updated(newGens, allGens []perm.Permutation) Transversal {
	u := cloneMap(t.u)
	uInv := cloneMap(t.uInv)

	existing := make([]point.Point, 0, len(t.u))
	for a := range t.u {
		existing = append(existing, a)
	}

	var frontier []point.Point
	for _, a := range existing {
		frontier = append(frontier, extend(u, uInv, a, newGens)...)
	}

	queue := frontier
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		queue = append(queue, extend(u, uInv, a, allGens)...)
	}

	return Transversal{beta: t.beta, u: u, uInv: uInv}
}

// extend applies gens to a, recording any image not yet present in u/uInv
// and returning the newly discovered points.
func extend(u, uInv map[point.Point]perm.Permutation, a point.Point, gens []perm.Permutation) []point.Point {
	ua, uInva := u[a], uInv[a]
	var added []point.Point
	for _, s := range gens {
		img := s.Image(a)
		if _, ok := u[img]; ok {
			continue
		}
		u[img] = ua.Op(s)
		uInv[img] = s.Inverse().Op(uInva)
		added = append(added, img)
	}

	return added
}

// Conjugate returns the transversal of t's base point moved by f: base
// point β becomes β·f, and each entry (α, u(α), uInv(α)) becomes
// (α·f, fInv·u(α)·f, fInv·uInv(α)·f) — §4.E's conjugation rule.
// basechange does not call it: it reshapes chains by rebuilding suffixes
// with schreiersims.
func (t Transversal) Conjugate(f, fInv perm.Permutation) Transversal {
	u2 := make(map[point.Point]perm.Permutation, len(t.u))
	uInv2 := make(map[point.Point]perm.Permutation, len(t.uInv))
	for a, ua := range t.u {
		u2[f.Image(a)] = fInv.Op(ua).Op(f)
	}
	for a, uiv := range t.uInv {
		uInv2[f.Image(a)] = fInv.Op(uiv).Op(f)
	}

	return Transversal{beta: f.Image(t.beta), u: u2, uInv: uInv2}
}

func cloneMap(m map[point.Point]perm.Permutation) map[point.Point]perm.Permutation {
	out := make(map[point.Point]perm.Permutation, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
