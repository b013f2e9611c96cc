package aes128

// The state is a Block read as a 4x4 matrix in column-major
// order: byte i is row i%4, column i/4. Every transform below
// takes the state by value and returns the new state.

// addRoundKey XORs round key word i into column i of s. It is
// its own inverse.
func addRoundKey(s Block, k [4]uint32) Block {
	for i, w := range k {
		s[4*i+0] ^= byte(w >> 24)
		s[4*i+1] ^= byte(w >> 16)
		s[4*i+2] ^= byte(w >> 8)
		s[4*i+3] ^= byte(w)
	}
	return s
}

func subBytes(s Block) Block {
	return subBlock(s, &sbox0)
}

func invSubBytes(s Block) Block {
	return subBlock(s, &sbox1)
}

// shiftRows rotates row r of s left by r positions.
func shiftRows(s Block) Block {
	return Block{
		s[0], s[5], s[10], s[15],
		s[4], s[9], s[14], s[3],
		s[8], s[13], s[2], s[7],
		s[12], s[1], s[6], s[11],
	}
}

// invShiftRows rotates row r of s right by r positions.
//
// Row 2 is rotated by half its length, so it is the same in
// both directions: the two opposite byte pairs swap.
func invShiftRows(s Block) Block {
	return Block{
		s[0], s[13], s[10], s[7],
		s[4], s[1], s[14], s[11],
		s[8], s[5], s[2], s[15],
		s[12], s[9], s[6], s[3],
	}
}

func mixColumns(s Block) Block {
	return mixColumnsWith(s, mixColumn)
}

func invMixColumns(s Block) Block {
	return mixColumnsWith(s, invMixColumn)
}
