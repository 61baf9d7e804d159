package search

import (
	"github.com/dkrylov/bsgs/chain"
	"github.com/dkrylov/bsgs/point"
)

// BasePointGroups partitions c's base into maximal contiguous runs
// whose points agree under blockOf (§4.I) — e.g. "lies in block 0 of
// this partition". It is a standalone utility: Search and
// partition.Test do not call it, and test one base point per level.
func BasePointGroups(c chain.Chain, blockOf func(point.Point) int) [][]point.Point {
	base := c.Base()
	var groups [][]point.Point
	i := 0
	for i < len(base) {
		j := i + 1
		for j < len(base) && blockOf(base[j]) == blockOf(base[i]) {
			j++
		}
		groups = append(groups, base[i:j])
		i = j
	}

	return groups
}
