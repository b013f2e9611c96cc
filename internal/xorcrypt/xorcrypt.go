// Package xorcrypt implements XOR ciphers and the frequency
// analysis needed to break them.
package xorcrypt

import (
	"errors"
	"math/bits"
	"sort"
	"unicode"
	"unicode/utf8"
)

// ErrLength is returned when two inputs that must have the same
// length do not.
var ErrLength = errors.New("xorcrypt: length mismatch")

// ErrTooShort is returned when a ciphertext is too short to
// estimate a key size.
var ErrTooShort = errors.New("xorcrypt: ciphertext too short")

// Fixed returns a XOR b.
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLength
	}
	z := make([]byte, len(a))
	for i := range a {
		z[i] = a[i] ^ b[i]
	}
	return z, nil
}

// Repeating XORs src with key repeated to the length of src.
//
// If key is empty, Repeating will panic.
func Repeating(src, key []byte) []byte {
	if len(key) == 0 {
		panic("xorcrypt: empty key")
	}
	z := make([]byte, len(src))
	for i, b := range src {
		z[i] = b ^ key[i%len(key)]
	}
	return z
}

// Single XORs every byte of src with k.
func Single(src []byte, k byte) []byte {
	z := make([]byte, len(src))
	for i, b := range src {
		z[i] = b ^ k
	}
	return z
}

// letters holds relative English letter frequencies in percent.
// Space is weighted slightly above 'e' so that a plaintext beats
// its case-flipped twin, where every space becomes a NUL.
var letters = map[rune]float64{
	'a': 8.497, 'b': 1.492, 'c': 2.202, 'd': 4.253, 'e': 11.162,
	'f': 2.228, 'g': 2.015, 'h': 6.094, 'i': 7.546, 'j': 0.153,
	'k': 1.292, 'l': 4.025, 'm': 2.406, 'n': 6.749, 'o': 7.507,
	'p': 1.929, 'q': 0.095, 'r': 7.587, 's': 6.327, 't': 9.356,
	'u': 2.758, 'v': 0.978, 'w': 2.560, 'x': 0.150, 'y': 1.994,
	'z': 0.077, ' ': 12,
}

// Score rates how much p looks like English text. Letters are
// counted case-insensitively; anything else scores zero.
//
// Input that is not valid UTF-8 scores -1.
func Score(p []byte) float64 {
	if !utf8.Valid(p) {
		return -1
	}
	var s float64
	for _, r := range string(p) {
		s += letters[unicode.ToLower(r)]
	}
	return s
}

// Guess is the best single-byte key found for a ciphertext.
type Guess struct {
	Key       byte
	Plaintext []byte
	Score     float64
}

// BreakSingle tries every single-byte key against ct and returns
// the one whose plaintext scores highest. Ties go to the
// smaller key.
//
// If no key produces valid UTF-8, the Guess has a nil Plaintext
// and a Score of -1.
func BreakSingle(ct []byte) Guess {
	best := Guess{Score: -1}
	for k := 0; k < 256; k++ {
		p := Single(ct, byte(k))
		if s := Score(p); s > best.Score {
			best = Guess{Key: byte(k), Plaintext: p, Score: s}
		}
	}
	return best
}

// DetectSingle returns the index of the ciphertext in cts most
// likely to be English under a single-byte XOR, along with its
// Guess. It returns -1 if cts is empty.
func DetectSingle(cts [][]byte) (int, Guess) {
	idx, best := -1, Guess{Score: -1}
	for i, ct := range cts {
		if g := BreakSingle(ct); idx < 0 || g.Score > best.Score {
			idx, best = i, g
		}
	}
	return idx, best
}

// Hamming returns the number of differing bits between a and b.
func Hamming(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLength
	}
	n := 0
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n, nil
}

// distance is the mean Hamming distance per byte between
// consecutive k-byte chunks of ct.
func distance(ct []byte, k int) float64 {
	n := len(ct) / k
	var sum float64
	for i := 0; i < n-1; i++ {
		d, _ := Hamming(ct[i*k:(i+1)*k], ct[(i+1)*k:(i+2)*k])
		sum += float64(d) / float64(k)
	}
	return sum / float64(n-1)
}

// KeySizes returns up to n candidate key sizes in [lo, hi],
// best first, ranked by normalized Hamming distance between
// consecutive chunks. Sizes with fewer than two whole chunks in
// ct are skipped.
func KeySizes(ct []byte, lo, hi, n int) []int {
	type cand struct {
		k int
		d float64
	}
	var cs []cand
	for k := lo; k <= hi; k++ {
		if k < 1 || len(ct)/k < 2 {
			continue
		}
		cs = append(cs, cand{k, distance(ct, k)})
	}
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].d < cs[j].d
	})
	if len(cs) > n {
		cs = cs[:n]
	}
	sizes := make([]int, len(cs))
	for i, c := range cs {
		sizes[i] = c.k
	}
	return sizes
}

// Transpose splits ct into k columns: column i holds every byte
// whose offset is i modulo k.
func Transpose(ct []byte, k int) [][]byte {
	cols := make([][]byte, k)
	for i, b := range ct {
		cols[i%k] = append(cols[i%k], b)
	}
	return cols
}

const (
	minKeySize = 2
	maxKeySize = 40
	// Number of distance-ranked key sizes to solve.
	keySizeCandidates = 3
	// A smaller key size wins if its plaintext scores at least
	// this fraction of the best score.
	keySizeSlack = 0.9
)

// BreakRepeating recovers the key of a repeating-key XOR
// ciphertext of English text.
//
// Chunk distances rank the multiples of the true key size about
// as well as the size itself, so every divisor of the best
// candidates is solved column by column and the smallest size
// whose plaintext scores close to the best is kept.
func BreakRepeating(ct []byte) ([]byte, error) {
	cands := KeySizes(ct, minKeySize, maxKeySize, keySizeCandidates)
	if len(cands) == 0 {
		return nil, ErrTooShort
	}

	seen := make(map[int]bool)
	var sizes []int
	for _, k := range cands {
		for p := minKeySize; p <= k; p++ {
			if k%p == 0 && !seen[p] {
				seen[p] = true
				sizes = append(sizes, p)
			}
		}
	}
	sort.Ints(sizes)

	keys := make([][]byte, len(sizes))
	scores := make([]float64, len(sizes))
	best := -1.0
	for i, k := range sizes {
		key := make([]byte, k)
		for j, col := range Transpose(ct, k) {
			key[j] = BreakSingle(col).Key
		}
		keys[i] = key
		scores[i] = Score(Repeating(ct, key)) / float64(len(ct))
		if i == 0 || scores[i] > best {
			best = scores[i]
		}
	}
	for i, s := range scores {
		if s >= best*keySizeSlack {
			return keys[i], nil
		}
	}
	return keys[len(keys)-1], nil
}
