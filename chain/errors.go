package chain

import "errors"

// ErrInvariantViolation indicates an internal BSGS invariant failed: a
// transversal has no representative for a point of its own orbit, an
// orbit is not closed under its level's generators, or a reshaped chain
// came out shorter than the base prefix asked for. This is never a user
// error; callers that see it should discard the chain being built (§7).
var ErrInvariantViolation = errors.New("chain: invariant violation")
