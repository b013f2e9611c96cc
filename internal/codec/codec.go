// Package codec converts between the text encodings accepted on
// the command line.
package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/ericlagergren/subtle/hex"
)

// Encoding names a byte encoding.
type Encoding int

const (
	// Raw leaves bytes unchanged.
	Raw Encoding = iota
	// Hex is lowercase base 16. It is decoded and encoded in
	// constant time, since it is also used for keys.
	Hex
	// Base64 is standard, padded base 64.
	Base64
)

// String returns the name accepted by ParseEncoding.
func (e Encoding) String() string {
	switch e {
	case Raw:
		return "raw"
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// ParseEncoding parses the name of an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "raw", "":
		return Raw, nil
	case "hex":
		return Hex, nil
	case "base64", "b64":
		return Base64, nil
	}
	return 0, fmt.Errorf("codec: unknown encoding %q", s)
}

// Decode decodes p from e.
//
// For Hex and Base64 all whitespace, including line breaks, is
// ignored.
func Decode(p []byte, e Encoding) ([]byte, error) {
	switch e {
	case Raw:
		return p, nil
	case Hex:
		p = stripSpace(p)
		dst := make([]byte, hex.DecodedLen(len(p)))
		n, err := hex.Decode(dst, p)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid hex: %w", err)
		}
		return dst[:n], nil
	case Base64:
		p = stripSpace(p)
		dst := make([]byte, base64.StdEncoding.DecodedLen(len(p)))
		n, err := base64.StdEncoding.Decode(dst, p)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid base64: %w", err)
		}
		return dst[:n], nil
	}
	return nil, fmt.Errorf("codec: unknown encoding %s", e)
}

// Encode encodes p as e.
func Encode(p []byte, e Encoding) ([]byte, error) {
	switch e {
	case Raw:
		return p, nil
	case Hex:
		dst := make([]byte, hex.EncodedLen(len(p)))
		hex.Encode(dst, p)
		return dst, nil
	case Base64:
		dst := make([]byte, base64.StdEncoding.EncodedLen(len(p)))
		base64.StdEncoding.Encode(dst, p)
		return dst, nil
	}
	return nil, fmt.Errorf("codec: unknown encoding %s", e)
}

// HexToBase64 re-encodes a hex string as base 64.
func HexToBase64(s string) (string, error) {
	p, err := Decode([]byte(s), Hex)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(p), nil
}

func stripSpace(p []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, p)
}
