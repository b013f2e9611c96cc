package aes128

// Multiplication in GF(2^8) with the reduction polynomial
//
//	x^8 + x^4 + x^3 + x + 1.
//
// The cipher only ever multiplies by the small constants that
// appear in the MixColumns matrices, so each of them is built
// from double and XOR rather than a general multiply.

// double returns x*2 in GF(2^8).
func double(x byte) byte {
	y := x << 1
	if x&0x80 != 0 {
		y ^= 0x1b
	}
	return y
}

// mul3 returns x*3 in GF(2^8).
func mul3(x byte) byte {
	return double(x) ^ x
}

// mul4 returns x*4 in GF(2^8).
func mul4(x byte) byte {
	return double(double(x))
}

// mul8 returns x*8 in GF(2^8).
func mul8(x byte) byte {
	return double(double(double(x)))
}

// mul9 returns x*9 in GF(2^8).
func mul9(x byte) byte {
	return mul8(x) ^ x
}

// mul11 returns x*11 in GF(2^8).
func mul11(x byte) byte {
	return mul8(x) ^ double(x) ^ x
}

// mul13 returns x*13 in GF(2^8).
func mul13(x byte) byte {
	return mul8(x) ^ mul4(x) ^ x
}

// mul14 returns x*14 in GF(2^8).
func mul14(x byte) byte {
	return mul8(x) ^ mul4(x) ^ double(x)
}
