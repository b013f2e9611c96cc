// Package blocks frames byte streams into AES blocks and applies
// a block function to each of them.
//
// No padding is ever added. Input whose length is not a multiple
// of the block size is rejected with ErrPartialBlock before it
// reaches the cipher.
package blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ericlagergren/subtle"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/ericlagergren/aes128"
)

// ErrPartialBlock is returned for input that does not end on a
// block boundary.
var ErrPartialBlock = errors.New("blocks: input is not a whole number of blocks")

// ErrOverlap is returned when dst and src share memory at
// different offsets.
var ErrOverlap = errors.New("blocks: invalid buffer overlap")

func checkAligned(n int) error {
	if n%aes128.BlockSize != 0 {
		return fmt.Errorf("%w: %d bytes (%d trailing)",
			ErrPartialBlock, n, n%aes128.BlockSize)
	}
	return nil
}

// Split copies p into blocks.
func Split(p []byte) ([]aes128.Block, error) {
	if err := checkAligned(len(p)); err != nil {
		return nil, err
	}
	bs := make([]aes128.Block, len(p)/aes128.BlockSize)
	for i := range bs {
		copy(bs[i][:], p[i*aes128.BlockSize:])
	}
	return bs, nil
}

// Join concatenates bs.
func Join(bs []aes128.Block) []byte {
	p := make([]byte, 0, len(bs)*aes128.BlockSize)
	for _, b := range bs {
		p = append(p, b[:]...)
	}
	return p
}

// Func transforms one block.
type Func func(aes128.Block) aes128.Block

// Encrypter returns a Func that encrypts with s.
func Encrypter(s *aes128.Schedule) Func {
	return func(b aes128.Block) aes128.Block {
		return aes128.EncryptBlock(b, s)
	}
}

// Decrypter returns a Func that decrypts with s.
func Decrypter(s *aes128.Schedule) Func {
	return func(b aes128.Block) aes128.Block {
		return aes128.DecryptBlock(b, s)
	}
}

// Stats describes one call to Apply.
type Stats struct {
	// Blocks is the number of blocks each worker transformed.
	Blocks []uint64
}

// Total returns the number of blocks transformed.
func (s Stats) Total() uint64 {
	var n uint64
	for _, b := range s.Blocks {
		n += b
	}
	return n
}

// counter is padded so that workers do not share cache lines.
type counter struct {
	n uint64
	_ cpu.CacheLinePad
}

// Apply writes fn(block) to dst for each block of src.
//
// The blocks are split into at most workers contiguous runs,
// each handled by its own goroutine. Dst and src must overlap
// entirely or not at all. Blocks never depend on
// each other, so the output does not depend on workers. Apply
// stops early and returns ctx.Err() if ctx is cancelled.
func Apply(ctx context.Context, dst, src []byte, fn Func, workers int) (Stats, error) {
	if err := checkAligned(len(src)); err != nil {
		return Stats{}, err
	}
	if len(dst) < len(src) {
		return Stats{}, fmt.Errorf("blocks: output too short: %d < %d", len(dst), len(src))
	}
	if subtle.InexactOverlap(dst[:len(src)], src) {
		return Stats{}, ErrOverlap
	}
	n := len(src) / aes128.BlockSize
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return Stats{}, ctx.Err()
	}

	counts := make([]counter, workers)
	per := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*per, (w+1)*per
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		c := &counts[w]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				off := i * aes128.BlockSize
				b := fn(aes128.Block(src[off : off+aes128.BlockSize]))
				copy(dst[off:], b[:])
				c.n++
			}
			return nil
		})
	}
	err := g.Wait()

	st := Stats{Blocks: make([]uint64, len(counts))}
	for i := range counts {
		st.Blocks[i] = counts[i].n
	}
	return st, err
}

// CountRepeats returns how many whole blocks of p repeat an
// earlier block. A trailing partial block is ignored.
//
// Independent per-block encryption maps equal plaintext blocks to
// equal ciphertext blocks, so a high count suggests that p was
// produced that way.
func CountRepeats(p []byte) int {
	seen := make(map[aes128.Block]struct{}, len(p)/aes128.BlockSize)
	n := 0
	for ; len(p) >= aes128.BlockSize; p = p[aes128.BlockSize:] {
		b := aes128.Block(p[:aes128.BlockSize])
		if _, ok := seen[b]; ok {
			n++
			continue
		}
		seen[b] = struct{}{}
	}
	return n
}
