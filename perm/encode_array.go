package perm

// chooseArrayKind picks the narrowest array width that can index a table
// of the given length (§4.B: "an image array of byte/short/int per slot").
func chooseArrayKind(n int) kind {
	switch {
	case n <= 1<<8:
		return kindArray8
	case n <= 1<<16:
		return kindArray16
	default:
		return kindArray32
	}
}

func arraysFromImages(k kind, images []int) (a8, inv8 []uint8, a16, inv16 []uint16, a32, inv32 []uint32) {
	n := len(images)
	switch k {
	case kindArray8:
		a8 = make([]uint8, n)
		inv8 = make([]uint8, n)
		for i, img := range images {
			a8[i] = uint8(img)
			inv8[img] = uint8(i)
		}
	case kindArray16:
		a16 = make([]uint16, n)
		inv16 = make([]uint16, n)
		for i, img := range images {
			a16[i] = uint16(img)
			inv16[img] = uint16(i)
		}
	default:
		a32 = make([]uint32, n)
		inv32 = make([]uint32, n)
		for i, img := range images {
			a32[i] = uint32(img)
			inv32[img] = uint32(i)
		}
	}

	return a8, inv8, a16, inv16, a32, inv32
}
