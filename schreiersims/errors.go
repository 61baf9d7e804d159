package schreiersims

import "errors"

// ErrIncompleteChain indicates the constructed chain's order did not
// match a caller-supplied target order (§4.G/§7).
var ErrIncompleteChain = errors.New("schreiersims: incomplete chain")
