package partition

import "github.com/dkrylov/bsgs/perm"

// InvariantHolds is the unordered-partition invariance predicate (§4.J):
// for every block b, let p0 = Start(b) and i = IndexOf(p0's image under
// g). The predicate holds iff i != -1 and every other point in block b
// maps under g to a point of block i too — i.e. g sends block b to block
// i as a whole, for some i, for every b.
func (pt Partition) InvariantHolds(g perm.Permutation) bool {
	for b := 0; b < pt.NumBlocks(); b++ {
		p0 := pt.Start(b)
		i := pt.IndexOf(g.Image(p0))
		if i == -1 {
			return false
		}

		for p, ok := pt.Next(p0); ok; p, ok = pt.Next(p) {
			if pt.IndexOf(g.Image(p)) != i {
				return false
			}
		}
	}

	return true
}
