package rng

import "math/rand"

// Rng is the randomness capability consumed by randomized Schreier–Sims
// and Chain.RandomElement (§6): a single bounded-integer generator.
type Rng interface {
	// NextInt returns a value in [0, bound). Behavior for bound<=0 is
	// left to the implementation; this library never calls it that way.
	NextInt(bound int) int
}

// RandomElementOracle optionally accelerates construction when the
// group order is already known (§6): given an Rng, it returns a uniform
// random element of the group.
type RandomElementOracle[G any] func(r Rng) G

// MathRand adapts *math/rand.Rand to the Rng interface. It is the
// default Rng implementation tests use; production callers may supply
// any other source.
type MathRand struct {
	r *rand.Rand
}

// NewMathRand returns a MathRand seeded deterministically from seed.
func NewMathRand(seed int64) MathRand {
	return MathRand{r: rand.New(rand.NewSource(seed))}
}

// NextInt implements Rng.
func (m MathRand) NextInt(bound int) int {
	return m.r.Intn(bound)
}
