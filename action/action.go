package action

import "github.com/dkrylov/bsgs/point"

// Action describes how elements of type G act on points: Actr(k, g) is
// the right action k·g, Actl(g, k) is the same image addressed from the
// element's side (g·k, kept distinct for call-site readability where the
// element is the natural subject). Support, SupportMin, SupportMax, and
// SupportMaxElement mirror §3's Permutation attributes; Sign mirrors
// §4.C's cycle-decomposition parity.
type Action[G any] interface {
	Actr(k point.Point, g G) point.Point
	Actl(g G, k point.Point) point.Point
	Support(g G) []point.Point
	SupportMin(g G) (point.Point, bool)
	SupportMax(g G) (point.Point, bool)
	SupportMaxElement(g G) point.Point
	Sign(g G) int
}

// Equal implements the "faithful" variant of Action (§4.C): two elements
// are equal iff they agree on every point up to the larger of their two
// SupportMax values (beyond that both fix every point). This is the
// generic analogue of
// perm.Permutation.Equals for an arbitrary action witness.
func Equal[G any](a Action[G], g, h G) bool {
	bound := point.Point(0)
	if gm, ok := a.SupportMax(g); ok && gm > bound {
		bound = gm
	}
	if hm, ok := a.SupportMax(h); ok && hm > bound {
		bound = hm
	}
	for k := point.Point(0); k <= bound; k++ {
		if a.Actr(k, g) != a.Actr(k, h) {
			return false
		}
	}

	return true
}
