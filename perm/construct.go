package perm

import "fmt"

// Identity returns the identity permutation. size is informational only
// (§3: "Identity: Any size; moves nothing. Stores size only.") — it plays
// no role in Equals, Hash, Image, or InvImage, since trailing identity
// never affects those.
func Identity(size int) Permutation {
	if size < 0 {
		size = 0
	}

	return Permutation{kind: kindIdentity, size: size}
}

// FromImages builds a Permutation from a length-n image table: images[k]
// is the image of point k, for a permutation of [0, n). Returns
// ErrInvalidPermutation if images is not a bijection of [0, n).
func FromImages(images []int) (Permutation, error) {
	n := len(images)
	seen := make([]bool, n)
	for k, img := range images {
		if img < 0 || img >= n || seen[img] {
			return Permutation{}, fmt.Errorf("perm: FromImages: image %d at %d: %w", img, k, ErrInvalidPermutation)
		}
		seen[img] = true
	}

	return fromImageSlice(images), nil
}

// FromCycles builds a Permutation by composing the given cycles, applied
// left to right (each subsequent cycle is multiplied on the right of the
// running product), exactly as a pen-and-paper product of disjoint or
// overlapping cycles is read. A cycle of length 0 or 1 contributes the
// identity.
func FromCycles(cycles ...[]int) (Permutation, error) {
	acc := Identity(0)
	for _, cyc := range cycles {
		c, err := permFromSingleCycle(cyc)
		if err != nil {
			return Permutation{}, err
		}
		acc = acc.Op(c)
	}

	return acc, nil
}

// permFromSingleCycle builds the permutation that sends cyc[i] to
// cyc[i+1] (cyclically), fixing everything else.
func permFromSingleCycle(cyc []int) (Permutation, error) {
	if len(cyc) <= 1 {
		return Identity(0), nil
	}
	maxPt := 0
	for _, p := range cyc {
		if p < 0 {
			return Permutation{}, fmt.Errorf("perm: FromCycles: negative point %d: %w", p, ErrInvalidPermutation)
		}
		if p > maxPt {
			maxPt = p
		}
	}
	images := make([]int, maxPt+1)
	for i := range images {
		images[i] = i
	}
	seen := make(map[int]bool, len(cyc))
	for i, p := range cyc {
		if seen[p] {
			return Permutation{}, fmt.Errorf("perm: FromCycles: repeated point %d in cycle: %w", p, ErrInvalidPermutation)
		}
		seen[p] = true
		next := cyc[(i+1)%len(cyc)]
		images[p] = next
	}

	return fromImageSlice(images), nil
}

// fromImageSlice is the single internal funnel every public constructor
// goes through. It trims trailing fixed points, then picks the narrowest
// legal encoding for the remaining support — the same codepath serves
// construction, composition ("shrink"), and inversion, so the narrowest-
// encoding invariant (§3) cannot be violated by forgetting to re-check it
// in one call site but not another.
func fromImageSlice(images []int) Permutation {
	// Trim trailing points that map to themselves.
	n := len(images)
	for n > 0 && images[n-1] == n-1 {
		n--
	}
	images = images[:n]

	if n == 0 {
		return Identity(0)
	}

	switch {
	case n <= smallSlots:
		padded := padIdentity(images, smallSlots)
		word, inv := smallWordFromImages(padded)

		return Permutation{kind: kindSmall, size: n, small: word, invSmall: inv}
	case n <= wideSlots:
		padded := padIdentity(images, wideSlots)
		words, inv := wideWordsFromImages(padded)

		return Permutation{kind: kindWide, size: n, wide: words, invWide: inv}
	default:
		k := chooseArrayKind(n)
		a8, inv8, a16, inv16, a32, inv32 := arraysFromImages(k, images)

		return Permutation{
			kind: k, size: n,
			arr8: a8, invArr8: inv8,
			arr16: a16, invArr16: inv16,
			arr32: a32, invArr32: inv32,
		}
	}
}

// padIdentity extends images with identity entries up to length w, so the
// fixed-width bit-packed encoders always see a full slot table.
func padIdentity(images []int, w int) []int {
	padded := make([]int, w)
	copy(padded, images)
	for i := len(images); i < w; i++ {
		padded[i] = i
	}

	return padded
}
