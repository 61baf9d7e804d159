// Package schreiersims builds a BSGS chain (chain.Chain) from a
// generating set, deterministically or from a random-element oracle
// (§4.G).
//
// Key features:
//   - BuildDeterministic(ctx, gens, targetOrder, opts...): grows the
//     chain level by level, checking every Schreier generator sifts to
//     the identity, extending the affected level (or appending a new
//     one) whenever it doesn't, until a full pass finds nothing left to
//     add; a non-nil targetOrder is then checked against the result.
//   - BuildRandomized(ctx, gens, targetOrder, oracle, r, opts...):
//     samples random elements instead of enumerating Schreier
//     generators, extending the chain whenever a sample fails to sift,
//     and stops once the chain's order matches targetOrder.
//
// Complexity: deterministic construction is polynomial but not
// asymptotically optimal — it re-scans every orbit point against every
// current generator on each pass, O(pass count × Σ|orbit_i| × |gens_i|)
// — adequate for the degrees this library targets, not for millions of
// points.
//
// Errors:
//   - ErrIncompleteChain: a caller-supplied target order never matched
//     the constructed chain's order (deterministic mismatch, or the
//     randomized variant exhausted its trial budget first).
//   - context.Canceled / context.DeadlineExceeded: ctx was cancelled
//     between outer-loop passes.
package schreiersims
