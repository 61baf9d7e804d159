package perm

import (
	"strconv"
	"strings"

	"github.com/dkrylov/bsgs/point"
)

// String renders p in canonical product-of-disjoint-cycles form under the
// 0-based convention, e.g. "(0 2 4)(1 3)". Fixed points are omitted; the
// identity renders as "()".
func (p Permutation) String() string {
	return p.StringWithConvention(point.Base0)
}

// StringWithConvention renders p in canonical product-of-disjoint-cycles
// form, translating each point through c (§6's "active 0-/1-based
// convention" for textual representation).
func (p Permutation) StringWithConvention(c point.Convention) string {
	bound := p.scanBound()
	visited := make([]bool, bound)
	var b strings.Builder
	wrote := false
	for start := 0; start < bound; start++ {
		if visited[start] {
			continue
		}
		cur := start
		cyc := []int{}
		for !visited[cur] {
			visited[cur] = true
			cyc = append(cyc, cur)
			cur = int(p.Image(point.Point(cur)))
		}
		if len(cyc) <= 1 {
			continue
		}
		wrote = true
		b.WriteByte('(')
		for i, v := range cyc {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(c.FromInternal(point.Point(v))))
		}
		b.WriteByte(')')
	}
	if !wrote {
		return "()"
	}

	return b.String()
}
