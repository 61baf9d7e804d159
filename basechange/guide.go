package basechange

import "github.com/dkrylov/bsgs/point"

// Guide advises, at each step of a base change, which point to place
// next (§4.H): "I want base point next; of the provided easy
// candidates, prefer those not in this fixed set." Next returns
// ok=false once it has nothing further to advise — ChangeBase then
// finalizes via CutRedundantAfter.
type Guide interface {
	Next(candidates, fixed []point.Point) (beta point.Point, ok bool)
}

// FixedOrderGuide advises exactly the given sequence, in order, skipping
// any point already in fixed — the "match this full base" guide.
type FixedOrderGuide struct {
	want []point.Point
	next int
}

// NewFixedOrderGuide returns a Guide that advises want in order.
func NewFixedOrderGuide(want []point.Point) *FixedOrderGuide {
	return &FixedOrderGuide{want: want}
}

// Next implements Guide.
func (g *FixedOrderGuide) Next(candidates, fixed []point.Point) (point.Point, bool) {
	fixedSet := toSet(fixed)
	for g.next < len(g.want) {
		p := g.want[g.next]
		g.next++
		if !fixedSet[p] {
			return p, true
		}
	}

	return 0, false
}

// PreferSetGuide advises, at every step, a candidate lying in preferred
// if one exists, otherwise any remaining candidate — the "prefer points
// lying in block 0 of this partition" guide.
type PreferSetGuide struct {
	preferred map[point.Point]bool
}

// NewPreferSetGuide returns a Guide preferring points in preferred.
func NewPreferSetGuide(preferred []point.Point) *PreferSetGuide {
	return &PreferSetGuide{preferred: toSet(preferred)}
}

// Next implements Guide.
func (g *PreferSetGuide) Next(candidates, fixed []point.Point) (point.Point, bool) {
	fixedSet := toSet(fixed)
	var fallback point.Point
	haveFallback := false
	for _, c := range candidates {
		if fixedSet[c] {
			continue
		}
		if g.preferred[c] {
			return c, true
		}
		if !haveFallback {
			fallback, haveFallback = c, true
		}
	}

	return fallback, haveFallback
}

// AnyRemainingGuide advises the first candidate not already fixed — the
// "finalize by any remaining moved point" guide.
type AnyRemainingGuide struct{}

// Next implements Guide.
func (AnyRemainingGuide) Next(candidates, fixed []point.Point) (point.Point, bool) {
	fixedSet := toSet(fixed)
	for _, c := range candidates {
		if !fixedSet[c] {
			return c, true
		}
	}

	return 0, false
}

func toSet(pts []point.Point) map[point.Point]bool {
	set := make(map[point.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}

	return set
}
