// Package perm implements Permutation, a total bijection of a finite
// prefix of the non-negative integers extended to the identity beyond it,
// and the Action capability describing how group elements act on points.
//
// What:
//
//   - Permutation is a single value type backed by one of four encodings,
//     chosen automatically by the size of its support: Identity (moves
//     nothing), a small bit-packed word ("Perm16", support ≤ 15), a wide
//     bit-packed triple of words ("Perm32", support ≤ 31), or a plain
//     image array for everything larger. Construction always picks the
//     narrowest legal encoding, and composing two permutations shrinks
//     the result's encoding if the product's support allows it.
//   - StdAction implements action.Action[Permutation] by delegating to
//     Permutation's own methods, so code written against the generic
//     capability and code that calls p.Image(k) directly see the same
//     semantics. This module's own packages (orbit, chain, search) use
//     the direct methods.
//
// Why: a bit-packed encoding keeps small-degree groups (the overwhelming
// majority of practical inputs) allocation-free and cache-resident, while
// the array fallback keeps large-degree groups correct without bounding
// the domain size.
//
// Errors:
//
//	ErrInvalidPermutation  fromImages received a non-bijection
//	ErrDomainOverflow      declared for a point beyond supportMaxElement;
//	                       no function returns it (constructors widen the
//	                       encoding instead)
package perm
