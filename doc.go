// Package bsgs is a computational finite-group-theory library over
// permutation groups, built around a base and strong generating set
// (BSGS) stabilizer chain.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	point/        — the 0-based point type and convention conversion
//	perm/         — the permutation value type: encode/compose/invert/sign
//	action/       — the generic Action[G] capability (§4.C's polymorphism)
//	orbit/        — BFS point-closure under a generator set
//	transversal/  — coset representative table for one base point
//	chain/        — the BSGS stabilizer chain itself
//	schreiersims/ — deterministic and randomized chain construction
//	basechange/   — reshaping a chain onto a different advised base
//	search/       — the generic backtracking subgroup-search driver
//	partition/    — unordered-partition stabilizer support
//	group/        — Grp, the minimal public group handle
//
// Quick example: build Sym(5) from a transposition and a long cycle, and
// ask whether it contains a given permutation.
//
//	s, _ := perm.FromCycles([]int{1, 2})
//	c, _ := perm.FromCycles([]int{1, 2, 3, 4, 5})
//	g, _ := group.FromGenerators(context.Background(), []perm.Permutation{s, c})
//	g.Order()               // 120
//	g.Contains(someElement) // true or false
package bsgs
