package basechange

import "errors"

// ErrIndexOutOfRange indicates SwapAdjacent was asked to swap a level
// index that has no next neighbor in the chain.
var ErrIndexOutOfRange = errors.New("basechange: index out of range")
