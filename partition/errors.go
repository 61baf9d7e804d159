package partition

import "errors"

// ErrEmptyBlock indicates New was given a block with no points.
var ErrEmptyBlock = errors.New("partition: empty block")

// ErrPointOutOfRange indicates a block referenced a point outside [0, n).
var ErrPointOutOfRange = errors.New("partition: point out of range")

// ErrOverlappingBlocks indicates the same point appeared in more than
// one block.
var ErrOverlappingBlocks = errors.New("partition: overlapping blocks")

// ErrIncompletePartition indicates some point in [0, n) was assigned to
// no block.
var ErrIncompletePartition = errors.New("partition: incomplete partition")
