// Package group exposes Grp, the minimal public handle over a BSGS chain
// (§4.K): construction from generators (optionally with a known order to
// verify against), order, containment, random sampling, and the three
// derived-subgroup operations — pointwise stabilizer of a set, group
// intersection, and unordered-partition stabilizer.
//
// Every Grp operation is value-level: constructors build, verify, and
// freeze a chain internally, and every derived Grp they return is a
// fresh, independent handle. There is no way to observe or mutate the
// chain backing a Grp from outside this package.
package group
