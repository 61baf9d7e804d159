// Package chain implements the BSGS chain (§3, §4.F): a linked list of
// Nodes, each holding a base point, its transversal, and its own strong
// generators (see Node.OwnGenerators), terminated by an implicit Term (the trivial group, modeled as a nil
// tail — the idiomatic Go reading of "empty tail").
//
// What:
//   - MutableChain is the builder-owned, doubly-linked working structure
//     (§9's "cyclic structure" design note): each node holds a prev
//     pointer so swap/conjugation can re-seat a node without re-walking
//     from the head. schreiersims, basechange and group build one and
//     return only its frozen Chain.
//   - Chain is the frozen, singly-linked, read-only result: Freeze walks
//     a MutableChain once and builds fresh nodes with no prev pointers.
//     Go's package encapsulation (unexported node type, value-returning
//     accessors) is what makes a Chain safe to share across goroutines
//     for read-only use — there is no separate runtime "immutable" flag
//     to check, because nothing in Chain's method set can mutate a node.
//
// Complexity: Order/Length/Base/StrongGeneratingSet are O(chain length);
// Sifts/BasicSift are O(chain length) transversal lookups;
// RandomElement is O(chain length) coset-representative picks.
//
// Errors:
//   - ErrInvariantViolation: a transversal has no representative for a
//     point of its own orbit, an orbit is not closed under its level's
//     generators, or a reshaped chain is shorter than the base prefix
//     asked for — all indicate a bug in the chain's builder, not a user
//     error, and are never returned from normal operation. This package
//     declares it; schreiersims, search and group return it.
package chain
