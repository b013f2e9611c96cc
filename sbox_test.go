package aes128

import (
	"math/bits"
	"testing"
)

// TestSboxBijection tests that sbox1 inverts sbox0 and that
// sbox0 is a permutation.
func TestSboxBijection(t *testing.T) {
	var seen [256]bool
	for x := 0; x < 256; x++ {
		y := sbox0[x]
		if seen[y] {
			t.Fatalf("%#0.2x: duplicate output %#0.2x", x, y)
		}
		seen[y] = true
		if got := sbox1[y]; got != byte(x) {
			t.Fatalf("%#0.2x: inverse returned %#0.2x", x, got)
		}
		if got := sbox0[sbox1[x]]; got != byte(x) {
			t.Fatalf("%#0.2x: forward(inverse) returned %#0.2x", x, got)
		}
	}
}

// TestSboxDerivation recomputes the S-box from its definition:
// the multiplicative inverse in GF(2^8) followed by the affine
// transform.
func TestSboxDerivation(t *testing.T) {
	var inv [256]byte
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			if mul(byte(x), byte(y)) == 1 {
				inv[x] = byte(y)
				break
			}
		}
	}
	for x := 0; x < 256; x++ {
		b := inv[x]
		want := b ^
			bits.RotateLeft8(b, 1) ^
			bits.RotateLeft8(b, 2) ^
			bits.RotateLeft8(b, 3) ^
			bits.RotateLeft8(b, 4) ^
			0x63
		if got := sbox0[x]; got != want {
			t.Fatalf("%#0.2x: expected %#0.2x, got %#0.2x", x, want, got)
		}
	}
}

// TestSubWord uses the first expansion step from FIPS-197
// appendix A.1.
func TestSubWord(t *testing.T) {
	for i, tc := range []struct {
		w, want uint32
	}{
		{0xcf4f3c09, 0x8a84eb01},
		{0x00000000, 0x63636363},
		{0x6c76052a, 0x50386be5},
	} {
		if got := subWord(tc.w); got != tc.want {
			t.Fatalf("#%d: expected %#0.8x, got %#0.8x", i, tc.want, got)
		}
	}
}

func TestSubBytes(t *testing.T) {
	var s Block
	for i := range s {
		s[i] = byte(i * 17)
	}
	got := subBytes(s)
	for i := range s {
		if got[i] != sbox0[s[i]] {
			t.Fatalf("byte %d: expected %#0.2x, got %#0.2x", i, sbox0[s[i]], got[i])
		}
	}
	if back := invSubBytes(got); back != s {
		t.Fatalf("expected %x, got %x", s, back)
	}
}
