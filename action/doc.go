// Package action defines the Action capability (§4.C): "group element g
// acts on integer point k", abstracted away from any one concrete group
// element type. This module only ever instantiates it with
// perm.Permutation (see perm.StdAction); orbit, search and chain do not
// go through it and call Permutation's methods directly. The capability
// itself carries no dependency on the perm package.
//
// Style note: the generic-interface-plus-one-concrete-witness shape here
// follows the [T BitPattern]-style constraints used throughout
// github.com/unixpickle/groupcompress, adapted from bit patterns to
// permutation points.
package action
