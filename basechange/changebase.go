package basechange

import (
	"context"
	"fmt"

	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/point"
)

// ChangeBase reshapes c so that its base matches guide's advice as far
// as the guide goes, leaving the rest of the chain as-is (§4.H's state
// machine: Examine → Keep | ShiftViaConjugation | HardSwap →
// MaybeCutTail). At each level i it examines the current base point: if
// it's what the guide wants, it keeps it; if the guide wants a point
// that already appears later in the base, it bubbles that point forward
// with a chain of SwapAdjacent calls (the "shift" path); otherwise it
// splices the point in with a suffix rebuild (the "hard swap" path).
// The walk is terminal once the guide is exhausted or the tail has
// nothing left to rearrange, at which point CutRedundantAfter finalizes
// the result.
func ChangeBase(ctx context.Context, c chain.Chain, guide Guide) (chain.Chain, error) {
	cur := c
	for i := 0; i < cur.Length(); {
		nodes := cur.Nodes()
		fixed := basePoints(nodes[:i])
		candidates := movedPointsBeyond(nodes, i)

		desired, ok := guide.Next(candidates, fixed)
		if !ok {
			break
		}
		if desired == nodes[i].Beta() {
			i++

			continue
		}

		if j := indexOfBeta(nodes, i, desired); j >= 0 {
			for k := j; k > i; k-- {
				next, err := SwapAdjacent(ctx, cur, k-1)
				if err != nil {
					return chain.Chain{}, fmt.Errorf("basechange: ChangeBase: %w", err)
				}
				cur = next
			}
		} else {
			newSuffixBase := append([]point.Point{desired}, basePoints(nodes[i:])...)
			next, err := rebuildSuffixFrom(ctx, cur, i, newSuffixBase)
			if err != nil {
				return chain.Chain{}, fmt.Errorf("basechange: ChangeBase: %w", err)
			}
			cur = next
		}
		i++
	}

	return CutRedundantAfter(cur), nil
}

// CutRedundantAfter drops trailing nodes whose orbit never grew past
// the singleton {β} and that accumulated no own generators — the
// cutRedundantAfter step of §4.H, run once a base change is done.
func CutRedundantAfter(c chain.Chain) chain.Chain {
	m := c.ToMutable()
	for m.Len() > 0 {
		i := m.Len() - 1
		_, trans, own := m.At(i)
		if trans.Len() == 1 && len(own) == 0 {
			m.TruncateAfter(i - 1)

			continue
		}

		break
	}

	return m.Freeze()
}

func basePoints(nodes []chain.Node) []point.Point {
	out := make([]point.Point, len(nodes))
	for i, n := range nodes {
		out[i] = n.Beta()
	}

	return out
}

// movedPointsBeyond collects the distinct points any own-generator from
// level i onward moves, plus the remaining base points themselves — the
// "easy candidates" a guide is offered at level i.
func movedPointsBeyond(nodes []chain.Node, i int) []point.Point {
	seen := make(map[point.Point]bool)
	var out []point.Point
	add := func(p point.Point) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, n := range nodes[i:] {
		add(n.Beta())
		for _, g := range n.OwnGenerators() {
			for _, p := range g.Support() {
				add(p)
			}
		}
	}

	return out
}

func indexOfBeta(nodes []chain.Node, from int, beta point.Point) int {
	for i := from; i < len(nodes); i++ {
		if nodes[i].Beta() == beta {
			return i
		}
	}

	return -1
}
