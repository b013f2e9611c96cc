package aes128

// column is one column of the state, top row first.
type column [4]byte

// mixColumn multiplies c by the circulant MDS matrix
//
//	[2 3 1 1]
//	[1 2 3 1]
//	[1 1 2 3]
//	[3 1 1 2]
func mixColumn(c column) column {
	return column{
		double(c[0]) ^ mul3(c[1]) ^ c[2] ^ c[3],
		c[0] ^ double(c[1]) ^ mul3(c[2]) ^ c[3],
		c[0] ^ c[1] ^ double(c[2]) ^ mul3(c[3]),
		mul3(c[0]) ^ c[1] ^ c[2] ^ double(c[3]),
	}
}

// invMixColumn multiplies c by the inverse of the MDS matrix
//
//	[14 11 13  9]
//	[ 9 14 11 13]
//	[13  9 14 11]
//	[11 13  9 14]
func invMixColumn(c column) column {
	return column{
		mul14(c[0]) ^ mul11(c[1]) ^ mul13(c[2]) ^ mul9(c[3]),
		mul9(c[0]) ^ mul14(c[1]) ^ mul11(c[2]) ^ mul13(c[3]),
		mul13(c[0]) ^ mul9(c[1]) ^ mul14(c[2]) ^ mul11(c[3]),
		mul11(c[0]) ^ mul13(c[1]) ^ mul9(c[2]) ^ mul14(c[3]),
	}
}

// mixColumnsWith replaces each column of s with fn(column).
func mixColumnsWith(s Block, fn func(column) column) Block {
	for i := 0; i < BlockSize; i += 4 {
		c := fn(column{s[i], s[i+1], s[i+2], s[i+3]})
		copy(s[i:i+4], c[:])
	}
	return s
}
