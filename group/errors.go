package group

import "errors"

// ErrDuplicatePoint indicates Stabilizer was given the same point twice.
var ErrDuplicatePoint = errors.New("group: duplicate point in set")
