package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ericlagergren/subtle/hex"
)

func TestHexToBase64(t *testing.T) {
	const (
		in   = "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"
		want = "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"
	)
	got, err := HexToBase64(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if _, err := HexToBase64("abc"); err == nil {
		t.Fatal("expected an error for odd-length hex")
	}
}

func TestDecode(t *testing.T) {
	for i, tc := range []struct {
		in   string
		enc  Encoding
		want string
	}{
		{"hello", Raw, "hello"},
		{"68656c6c6f", Hex, "hello"},
		{"6865 6c6c\n6f\n", Hex, "hello"},
		{"68656C6C6F", Hex, "hello"},
		{"aGVsbG8=", Base64, "hello"},
		{"aGVs\nbG8=\n", Base64, "hello"},
		{"", Hex, ""},
	} {
		got, err := Decode([]byte(tc.in), tc.enc)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if string(got) != tc.want {
			t.Fatalf("#%d: expected %q, got %q", i, tc.want, got)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("zz"), Hex); err == nil {
		t.Fatal("expected an error for invalid hex")
	}
	var herr hex.InvalidByteError
	if _, err := Decode([]byte("0g"), Hex); !errors.As(err, &herr) {
		t.Fatalf("expected hex.InvalidByteError, got %v", err)
	}
	if _, err := Decode([]byte("abc"), Hex); !errors.Is(err, hex.ErrLength) {
		t.Fatalf("expected hex.ErrLength, got %v", err)
	}
	if _, err := Decode([]byte("a$=="), Base64); err == nil {
		t.Fatal("expected an error for invalid base64")
	}
}

func TestEncode(t *testing.T) {
	p := []byte{0x00, 0xff, 0x10}
	for i, tc := range []struct {
		enc  Encoding
		want string
	}{
		{Raw, "\x00\xff\x10"},
		{Hex, "00ff10"},
		{Base64, "AP8Q"},
	} {
		got, err := Encode(p, tc.enc)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if string(got) != tc.want {
			t.Fatalf("#%d: expected %q, got %q", i, tc.want, got)
		}
		back, err := Decode(got, tc.enc)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if !bytes.Equal(back, p) {
			t.Fatalf("#%d: expected %x, got %x", i, p, back)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	for i, tc := range []struct {
		in   string
		want Encoding
	}{
		{"raw", Raw},
		{"", Raw},
		{"HEX", Hex},
		{"base64", Base64},
		{"b64", Base64},
	} {
		got, err := ParseEncoding(tc.in)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if got != tc.want {
			t.Fatalf("#%d: expected %s, got %s", i, tc.want, got)
		}
		if tc.in != "" && tc.in != "b64" && got.String() != lower(tc.in) {
			t.Fatalf("#%d: String() = %q", i, got.String())
		}
	}
	if _, err := ParseEncoding("rot13"); err == nil {
		t.Fatal("expected an error")
	}
}

func lower(s string) string {
	return string(bytes.ToLower([]byte(s)))
}
