package point

import (
	"errors"
	"fmt"
)

// ErrNegativePoint indicates a user-facing literal could not be converted
// to a non-negative internal Point under the active Convention.
var ErrNegativePoint = errors.New("point: negative point")

// Point is a non-negative integer identifying one element of the domain a
// permutation acts on. Internally, every Point is always 0-based; user
// code chooses its preferred literal convention via Convention.
type Point int

// Less orders Points by their underlying integer value.
func (p Point) Less(other Point) bool {
	return p < other
}

// String renders the Point as its internal 0-based integer.
func (p Point) String() string {
	return fmt.Sprintf("%d", int(p))
}

// Convention selects whether textual/user-facing point literals are
// 0-based or 1-based. Internal representation is always 0-based;
// Convention only governs the translation at the edges.
type Convention int

const (
	// Base0 treats user literals as already 0-based: ToInternal and
	// FromInternal are both the identity.
	Base0 Convention = iota

	// Base1 treats user literals as 1-based: ToInternal subtracts one,
	// FromInternal adds one back.
	Base1
)

// ToInternal converts a user-facing literal to an internal 0-based Point
// under this Convention. Returns ErrNegativePoint if the result would be
// negative.
func (c Convention) ToInternal(literal int) (Point, error) {
	n := literal
	if c == Base1 {
		n--
	}
	if n < 0 {
		return 0, fmt.Errorf("point: ToInternal(%d): %w", literal, ErrNegativePoint)
	}

	return Point(n), nil
}

// FromInternal converts an internal 0-based Point back to a user-facing
// literal under this Convention.
func (c Convention) FromInternal(p Point) int {
	n := int(p)
	if c == Base1 {
		n++
	}

	return n
}
