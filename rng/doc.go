// Package rng declares the narrow randomness capability this library
// consumes (§6): Rng for a caller-supplied source of bounded integers,
// and RandomElementOracle for an optional accelerator that samples group
// elements directly. There is no hidden global random source anywhere
// in this module — every randomized operation takes one of these
// explicitly, the same "inject the capability" shape tsp/rng.go in the
// teacher uses to wrap *rand.Rand behind a narrow interface.
package rng
