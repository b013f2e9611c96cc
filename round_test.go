package aes128

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestShiftRows(t *testing.T) {
	in := unhexBlock("1234567890abcdef1122334455667788")
	want := unhexBlock("12ab338890227778116656ef5534cd44")
	if got := shiftRows(in); got != want {
		t.Fatalf("expected %x, got %x", want, got)
	}
	if got := invShiftRows(want); got != in {
		t.Fatalf("expected %x, got %x", in, got)
	}
}

// TestShiftRowsLayout checks every byte against the
// column-major definition.
func TestShiftRowsLayout(t *testing.T) {
	var s Block
	for i := range s {
		s[i] = byte(i)
	}
	got := shiftRows(s)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			want := s[4*((c+r)%4)+r]
			if got[4*c+r] != want {
				t.Fatalf("row %d, col %d: expected %d, got %d",
					r, c, want, got[4*c+r])
			}
		}
	}
}

// TestShiftRowsInverse tests that shiftRows and invShiftRows
// undo each other on random states.
func TestShiftRowsInverse(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(seed))
	var s Block
	for i := 0; i < 1e4; i++ {
		rng.Read(s[:])
		if got := invShiftRows(shiftRows(s)); got != s {
			t.Fatalf("seed %d: expected %x, got %x", seed, s, got)
		}
		if got := shiftRows(invShiftRows(s)); got != s {
			t.Fatalf("seed %d: expected %x, got %x", seed, s, got)
		}
	}
}

func TestAddRoundKey(t *testing.T) {
	s := unhexBlock("db135345f20a225c01010101c6c6c6c6")
	k := [4]uint32{0xdb135345, 0xf20a225c, 0x01010101, 0xc6c6c6c6}
	if got := addRoundKey(s, k); got != (Block{}) {
		t.Fatalf("expected zero block, got %x", got)
	}

	k = [4]uint32{0x01020304, 0, 0, 0xff000000}
	want := unhexBlock("da115041f20a225c0101010139c6c6c6")
	got := addRoundKey(s, k)
	if got != want {
		t.Fatalf("expected %x, got %x", want, got)
	}
	if back := addRoundKey(got, k); back != s {
		t.Fatalf("expected %x, got %x", s, back)
	}
}
