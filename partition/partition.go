package partition

import (
	"fmt"

	"github.com/dkrylov/bsgs/point"
)

// Partition is an unordered partition of [0, n), stored exactly as §4.J
// names it: indexArray[p] is the block id of p, startArray[b] is some
// canonical point of block b, and linkArray[p] is the next point in p's
// block, or -1 at the end of the chain.
type Partition struct {
	n          int
	indexArray []int
	startArray []int
	linkArray  []int
}

// New builds a Partition of [0, n) from blocks. Every point in [0, n)
// must appear in exactly one block.
func New(n int, blocks [][]point.Point) (Partition, error) {
	indexArray := make([]int, n)
	for p := range indexArray {
		indexArray[p] = -1
	}
	linkArray := make([]int, n)
	startArray := make([]int, 0, len(blocks))

	for b, block := range blocks {
		if len(block) == 0 {
			return Partition{}, fmt.Errorf("partition: New: block %d: %w", b, ErrEmptyBlock)
		}

		startArray = append(startArray, int(block[0]))
		for i, p := range block {
			if int(p) < 0 || int(p) >= n {
				return Partition{}, fmt.Errorf("partition: New: block %d point %v: %w", b, p, ErrPointOutOfRange)
			}
			if indexArray[p] != -1 {
				return Partition{}, fmt.Errorf("partition: New: point %v: %w", p, ErrOverlappingBlocks)
			}

			indexArray[p] = b
			if i+1 < len(block) {
				linkArray[p] = int(block[i+1])
			} else {
				linkArray[p] = -1
			}
		}
	}

	for p, b := range indexArray {
		if b == -1 {
			return Partition{}, fmt.Errorf("partition: New: point %d: %w", p, ErrIncompletePartition)
		}
	}

	return Partition{n: n, indexArray: indexArray, startArray: startArray, linkArray: linkArray}, nil
}

// N returns the size of the domain the partition covers.
func (pt Partition) N() int { return pt.n }

// NumBlocks returns the number of blocks.
func (pt Partition) NumBlocks() int { return len(pt.startArray) }

// IndexOf returns p's block id, or -1 if p lies outside [0, n).
func (pt Partition) IndexOf(p point.Point) int {
	if int(p) < 0 || int(p) >= pt.n {
		return -1
	}

	return pt.indexArray[p]
}

// Start returns block b's canonical point.
func (pt Partition) Start(b int) point.Point { return point.Point(pt.startArray[b]) }

// Next returns the point following p in p's block, and whether one
// exists.
func (pt Partition) Next(p point.Point) (point.Point, bool) {
	next := pt.linkArray[p]
	if next == -1 {
		return 0, false
	}

	return point.Point(next), true
}

// Block returns every point of block b, following linkArray from its
// start.
func (pt Partition) Block(b int) []point.Point {
	out := []point.Point{pt.Start(b)}
	for p, ok := pt.Next(pt.Start(b)); ok; p, ok = pt.Next(p) {
		out = append(out, p)
	}

	return out
}

// BlockOf returns a function suitable for search.BasePointGroups: the
// block id of a point, or -1 outside [0, n).
func (pt Partition) BlockOf() func(point.Point) int {
	return func(p point.Point) int { return pt.IndexOf(p) }
}
