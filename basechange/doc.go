// Package basechange reshapes an existing BSGS chain (chain.Chain) to a
// different base, preserving the group it represents (§4.H).
//
// Key features:
//   - Guide: the caller's advice on which point to place next at each
//     level, and the three concrete guides built on it (FixedOrderGuide,
//     PreferSetGuide, AnyRemainingGuide).
//   - RebuildFromScratch: reruns Schreier–Sims over the full strong
//     generating set with a new base hint — correct, and the most
//     expensive strategy.
//   - SwapAdjacent: exchanges two adjacent base points by rebuilding
//     only the affected suffix of the chain from the stabilizer it
//     already has, leaving every earlier level untouched.
//   - ChangeBase: the guide-driven driver that walks the chain
//     Examine → Keep | ShiftViaConjugation | HardSwap → MaybeCutTail,
//     composing SwapAdjacent calls to bubble an already-present point
//     forward and the suffix rebuild to splice in a genuinely new one.
//   - CutRedundantAfter: drops trailing trivial nodes left over from
//     wherever a guide's advised base ran longer than necessary.
//
// Complexity: RebuildFromScratch is O(full Schreier–Sims); SwapAdjacent
// and the suffix-rebuild it's built on are O(Schreier–Sims restricted to
// the suffix from the swapped level), the accelerated path §4.H
// describes as "default because cases (a) dominate" — this module earns
// that acceleration by rebuilding only the untouched-prefix-preserving
// suffix rather than re-deriving the whole chain, not by the literal
// conjugation-composition shortcut in the original description (see
// DESIGN.md).
package basechange
