// Package aes128 implements the AES-128 block cipher from
// FIPS-197 on single 16-byte blocks.
//
// The package only provides the raw block transform. It does
// not implement a mode of operation or padding; callers that
// hold more than one block must frame their data into whole
// blocks themselves.
//
// The implementation is written for clarity over speed and
// makes no attempt to be constant time.
package aes128

import (
	"crypto/cipher"
	"fmt"

	"github.com/ericlagergren/subtle"
)

const (
	// BlockSize is the size in bytes of an AES block.
	BlockSize = 16
	// KeySize is the size in bytes of an AES-128 key.
	KeySize = 16
	// Rounds is the number of AES-128 rounds.
	Rounds = 10
)

// Block is a 128-bit block, read as a 4x4 column-major matrix
// of bytes.
type Block [BlockSize]byte

// Key is an AES-128 key.
type Key [KeySize]byte

// New creates a Cipher.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: %d", len(key))
	}
	return &Cipher{s: *Expand(Key(key))}, nil
}

// Cipher is an AES-128 instance with a fixed key.
//
// It implements cipher.Block and is safe for concurrent use.
type Cipher struct {
	s Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// BlockSize returns the AES block size.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Schedule returns the expanded key.
func (c *Cipher) Schedule() *Schedule {
	return &c.s
}

// Encrypt encrypts the first block in src into dst.
//
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes128: invalid buffer overlap")
	}
	b := EncryptBlock(Block(src[:BlockSize]), &c.s)
	copy(dst, b[:])
}

// Decrypt decrypts the first block in src into dst.
//
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("aes128: invalid buffer overlap")
	}
	b := DecryptBlock(Block(src[:BlockSize]), &c.s)
	copy(dst, b[:])
}

// EncryptBlocks encrypts each block in src independently and
// writes the result to dst.
//
// If len(src) is not a multiple of BlockSize, dst is shorter
// than src, or dst and src overlap inexactly, EncryptBlocks will
// panic.
func (c *Cipher) EncryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	for len(src) > 0 {
		b := EncryptBlock(Block(src[:BlockSize]), &c.s)
		copy(dst, b[:])
		dst, src = dst[BlockSize:], src[BlockSize:]
	}
}

// DecryptBlocks is the inverse of EncryptBlocks.
func (c *Cipher) DecryptBlocks(dst, src []byte) {
	checkBlocks(dst, src)
	for len(src) > 0 {
		b := DecryptBlock(Block(src[:BlockSize]), &c.s)
		copy(dst, b[:])
		dst, src = dst[BlockSize:], src[BlockSize:]
	}
}

func checkBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("aes128: invalid buffer length")
	}
	if len(dst) < len(src) {
		panic("aes128: output smaller than input")
	}
	if subtle.InexactOverlap(dst[:len(src)], src) {
		panic("aes128: invalid buffer overlap")
	}
}
