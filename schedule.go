package aes128

import (
	"encoding/binary"
	"math/bits"
)

// rcon holds the key expansion round constants: successive
// doublings of 1 in GF(2^8).
var rcon = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Schedule is an expanded AES-128 key: Rounds+1 round keys of
// four big-endian 32-bit words each.
//
// A Schedule is never modified after Expand returns, so it can
// be shared by any number of goroutines.
type Schedule struct {
	w [4 * (Rounds + 1)]uint32
}

// Expand runs the AES-128 key expansion.
func Expand(key Key) *Schedule {
	var s Schedule
	for i := 0; i < 4; i++ {
		s.w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	for r := 1; r <= Rounds; r++ {
		prev := s.w[4*(r-1) : 4*r]
		next := s.w[4*r : 4*r+4]

		// RotWord, SubWord, then the round constant in the
		// most significant byte.
		t := subWord(bits.RotateLeft32(prev[3], 8)) ^ uint32(rcon[r-1])<<24

		next[0] = prev[0] ^ t
		for i := 1; i < 4; i++ {
			next[i] = prev[i] ^ next[i-1]
		}
	}
	return &s
}

// RoundKey returns the round key for round r.
//
// RoundKey panics if r is not in [0, Rounds].
func (s *Schedule) RoundKey(r int) [4]uint32 {
	if r < 0 || r > Rounds {
		panic("aes128: round index out of range")
	}
	return s.roundKey(r)
}

func (s *Schedule) roundKey(r int) [4]uint32 {
	return [4]uint32(s.w[4*r : 4*r+4])
}

// Words returns the full key expansion, round 0 first.
func (s *Schedule) Words() [4 * (Rounds + 1)]uint32 {
	return s.w
}
