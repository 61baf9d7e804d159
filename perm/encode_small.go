package perm

// Decode/encode for the small bit-packed ("Perm16") encoding: one 64-bit
// word, smallWidth bits of (image-preimage) mod smallModulus per slot.
//
// decode: image(k) = (k + ((word >> (k·w)) & mask)) mod 2^w
// encode: word |= ((image − preimage) & mask) << (preimage · w)

func smallDecode(word uint64, k int) int {
	delta := int((word >> uint(k*smallWidth)) & smallMask)

	return (k + delta) % smallModulus
}

func smallEncodeSlot(word *uint64, preimage, image int) {
	delta := uint64(((image-preimage)%smallModulus + smallModulus) % smallModulus)
	*word |= (delta & smallMask) << uint(preimage*smallWidth)
}

// smallWordFromImages builds the packed word (and its inverse word) for a
// full image table over [0, smallSlots).
func smallWordFromImages(images []int) (word, inv uint64) {
	for k, img := range images {
		smallEncodeSlot(&word, k, img)
		smallEncodeSlot(&inv, img, k)
	}

	return word, inv
}
