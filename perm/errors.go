package perm

import "errors"

// Sentinel errors for the perm package. Callers MUST use errors.Is to
// branch on semantics; context is attached at call sites with %w, never
// baked into the sentinel message itself.
var (
	// ErrInvalidPermutation indicates fromImages was given a sequence
	// that is not a bijection of [0, n).
	ErrInvalidPermutation = errors.New("perm: invalid permutation")

	// ErrDomainOverflow names the failure of encoding a point beyond an
	// encoding's supportMaxElement. No function in this package returns
	// it: constructors always pick an encoding wide enough for the
	// support, and Image/InvImage treat points beyond it as fixed.
	ErrDomainOverflow = errors.New("perm: domain overflow")
)
