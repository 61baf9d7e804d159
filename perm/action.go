package perm

import (
	"github.com/dkrylov/bsgs/action"
	"github.com/dkrylov/bsgs/point"
)

// StdAction is the zero-size action.Action[Permutation] witness: it
// delegates every method straight to Permutation's own methods. It is
// the only Action witness this library constructs. chain, orbit and
// search take no action.Action parameter; they call Permutation's
// methods directly.
type StdAction struct{}

var _ action.Action[Permutation] = StdAction{}

// Actr returns k·g, the image of k under g.
func (StdAction) Actr(k point.Point, g Permutation) point.Point {
	return g.Image(k)
}

// Actl returns g·k, the same image addressed from the element side.
func (StdAction) Actl(g Permutation, k point.Point) point.Point {
	return g.Image(k)
}

// Support returns g's moved points.
func (StdAction) Support(g Permutation) []point.Point {
	return g.Support()
}

// SupportMin returns g's smallest moved point.
func (StdAction) SupportMin(g Permutation) (point.Point, bool) {
	return g.SupportMin()
}

// SupportMax returns g's largest moved point.
func (StdAction) SupportMax(g Permutation) (point.Point, bool) {
	return g.SupportMax()
}

// SupportMaxElement returns the upper bound g's encoding can represent.
func (StdAction) SupportMaxElement(g Permutation) point.Point {
	return g.SupportMaxElement()
}

// Sign returns g's permutation sign.
func (StdAction) Sign(g Permutation) int {
	return g.Sign()
}
