// Package orbit computes the orbit of a point under a generator set: the
// smallest set S with β ∈ S and k·g ∈ S for every k ∈ S and generator g
// (§4.D). An Orbit is an immutable bit set over points, built with
// github.com/bits-and-blooms/bitset for its dense, allocation-cheap
// dynamic bit set — the same library used by perm for support sets.
package orbit
