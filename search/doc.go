// Package search implements the generic backtracking subgroup-search
// driver (§4.I): given a chain.Chain and a SubgroupDefinition, it walks
// the chain depth-first, composing partial products as it descends and
// pruning subtrees a caller-supplied Test rejects, to enumerate the
// subgroup H = { g ∈ G : P(g) holds }.
//
// Key features:
//   - Test[G]: an immutable predicate over one descent step, returning
//     its own successor on acceptance (§9's "Polymorphism over
//     actions" — the driver never inspects G's internals, it only
//     composes and tests it).
//   - SubgroupDefinition[G]: bundles Identity/Compose (how to build a
//     candidate incrementally), InSubgroup (the final leaf check), an
//     optional base-change Guide, and FirstLevelTest (a Test seeded
//     with whole-chain invariants).
//   - Search: the driver itself.
//   - BasePointGroups: partitions a chain's base into maximal
//     contiguous runs agreeing on an external classifier (e.g. a
//     partition's block-of-point function, see partition.BlockOf).
//     Search itself does not call it; it tests one level at a time.
//
// Complexity: O(Σ|orbit_i| × branching after pruning) — exponential in
// the worst case (an accept-everything Test degenerates to full orbit
// enumeration), bounded in practice by how aggressively Test prunes.
//
// Errors:
//   - chain.ErrInvariantViolation: a transversal claimed to contain a
//     candidate orbit image but had no representative for it — a bug
//     in the chain being searched, never the caller's Test.
//   - context.Canceled / context.DeadlineExceeded: ctx was cancelled
//     during descent.
package search
