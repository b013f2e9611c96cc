package aes128

import "testing"

// TestExpand tests the full expansion of "Thats my Kung Fu".
func TestExpand(t *testing.T) {
	want := [4 * (Rounds + 1)]uint32{
		0x54686174, 0x73206d79, 0x204b756e, 0x67204675,
		0xe232fcf1, 0x91129188, 0xb159e4e6, 0xd679a293,
		0x56082007, 0xc71ab18f, 0x76435569, 0xa03af7fa,
		0xd2600de7, 0x157abc68, 0x6339e901, 0xc3031efb,
		0xa11202c9, 0xb468bea1, 0xd75157a0, 0x1452495b,
		0xb1293b33, 0x05418592, 0xd210d232, 0xc6429b69,
		0xbd3dc287, 0xb87c4715, 0x6a6c9527, 0xac2e0e4e,
		0xcc96ed16, 0x74eaaa03, 0x1e863f24, 0xb2a8316a,
		0x8e51ef21, 0xfabb4522, 0xe43d7a06, 0x56954b6c,
		0xbfe2bf90, 0x4559fab2, 0xa16480b4, 0xf7f1cbd8,
		0x28fddef8, 0x6da4244a, 0xccc0a4fe, 0x3b316f26,
	}
	s := Expand(Key([]byte("Thats my Kung Fu")))
	got := s.Words()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d: expected %#0.8x, got %#0.8x", i, want[i], got[i])
		}
	}
	for r := 0; r <= Rounds; r++ {
		k := s.RoundKey(r)
		if k != [4]uint32(want[4*r:4*r+4]) {
			t.Fatalf("round %d: expected %x, got %x", r, want[4*r:4*r+4], k)
		}
	}
}

// TestExpandFIPS tests the last round key from FIPS-197
// appendix A.1.
func TestExpandFIPS(t *testing.T) {
	s := Expand(Key(unhex("2b7e151628aed2a6abf7158809cf4f3c")))
	want := [4]uint32{0xd014f9a8, 0xc9ee2589, 0xe13f0cc8, 0xb6630ca6}
	if got := s.RoundKey(Rounds); got != want {
		t.Fatalf("expected %x, got %x", want, got)
	}
}

// TestExpandDeterministic tests that expanding the same key
// twice gives the same schedule.
func TestExpandDeterministic(t *testing.T) {
	key := Key(unhex("000102030405060708090a0b0c0d0e0f"))
	a, b := Expand(key), Expand(key)
	if a == b {
		t.Fatal("Expand returned a shared schedule")
	}
	if *a != *b {
		t.Fatalf("expected %x, got %x", a.Words(), b.Words())
	}
}

func TestRoundKeyRange(t *testing.T) {
	s := Expand(Key{})
	for _, r := range []int{-1, Rounds + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("RoundKey(%d) did not panic", r)
				}
			}()
			s.RoundKey(r)
		}()
	}
}
