package perm

// kind tags which concrete encoding backs a Permutation. Dispatch on kind
// replaces a classic interface hierarchy: callers only ever see the
// Permutation value type, never the encoding.
type kind uint8

const (
	// kindIdentity moves no point. Only size is meaningful, and size is
	// informational only: two Permutations differing solely in trailing
	// identity compare and hash equal regardless of their declared size.
	kindIdentity kind = iota

	// kindSmall is "Perm16": supportMax ≤ smallMaxPoint, one 64-bit word,
	// smallWidth bits of (image-preimage) per slot.
	kindSmall

	// kindWide is "Perm32": supportMax ≤ wideMaxPoint, three 64-bit
	// words, wideWidth bits of (image-preimage) per slot, slots laid out
	// 12/12/8 across the three words.
	kindWide

	// kindArray8/16/32 hold a plain image-lookup table sized to the
	// smallest integer width that can index it.
	kindArray8
	kindArray16
	kindArray32
)

const (
	smallWidth   = 4
	smallMask    = (1 << smallWidth) - 1
	smallSlots   = 16
	smallModulus = 1 << smallWidth
	smallMaxPoint = smallSlots - 1 // 15

	wideWidth    = 5
	wideMask     = (1 << wideWidth) - 1
	wideSlots    = 32
	wideModulus  = 1 << wideWidth
	wideMaxPoint = wideSlots - 1 // 31

	// wideWord0Slots/wideWord1Slots/wideWord2Slots give the 12/12/8
	// layout required by §4.B.
	wideWord0Slots = 12
	wideWord1Slots = 12
	wideWord2Slots = 8
)

// Permutation is a total bijection of [0, m] for some finite m, extended
// to the identity on [m+1, ∞). It is a value type: copying it copies the
// (small, cheap) encoding, never a pointer into shared mutable state.
type Permutation struct {
	kind kind

	// size is the length of the trimmed image table the Permutation was
	// built from (for Identity, the size passed to it). It is
	// informational: identity points beyond the real support never
	// affect Equals, Hash, Image, or InvImage.
	size int

	small uint64
	wide  [3]uint64

	// invSmall/invWide are the inverse permutation's own packed words,
	// precomputed at construction time so InvImage is O(1) like Image.
	invSmall uint64
	invWide  [3]uint64

	arr8  []uint8
	arr16 []uint16
	arr32 []uint32

	invArr8  []uint8
	invArr16 []uint16
	invArr32 []uint32
}
