// Package partition implements unordered-partition stabilizer support
// (§4.J): a Partition over [0, n) stored as the three parallel arrays the
// spec names directly, the unordered-partition invariance predicate, and
// a search.Test that prunes a descent as soon as it can prove no
// completion will preserve the partition.
//
// A Partition's blocks are unordered: g stabilizes the partition if it
// permutes the blocks among themselves, not if it fixes each block
// pointwise. InvariantHolds(g) is the ground truth, checked against every
// point of every block; Test is a sound but incomplete early filter that
// only reasons about base points, used purely to prune search before the
// leaf check runs.
package partition
