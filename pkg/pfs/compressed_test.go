package pfs

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeCompressedSectionRoundTrip(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("firmware"), 64)
	wrapped := append(buildCompressed(t, payload), 0xAA, 0xBB)

	cs, rest, err := DecodeCompressedSection(wrapped)
	if err != nil {
		t.Fatalf("decode compressed section: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("remainder: got %d want 2", len(rest))
	}
	if int(cs.Size) != len(cs.Data) {
		t.Fatalf("size %d does not match data length %d", cs.Size, len(cs.Data))
	}

	out, err := cs.Inflate()
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if !bytes.Equal(out, payload) {
		t.Fatalf("inflated payload mismatch: %d bytes", len(out))
	}
}

func TestDecodeCompressedSectionBadMagic(t *testing.T) {
	t.Parallel()

	wrapped := buildCompressed(t, []byte("x"))
	wrapped[4] ^= 0xFF
	if _, _, err := DecodeCompressedSection(wrapped); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeCompressedSectionTruncated(t *testing.T) {
	t.Parallel()

	wrapped := buildCompressed(t, []byte("some payload"))
	if _, _, err := DecodeCompressedSection(wrapped[:len(wrapped)-20]); !errors.Is(err, ErrShortInput) {
		t.Fatalf("expected ErrShortInput, got %v", err)
	}
}

func TestInflateGarbage(t *testing.T) {
	t.Parallel()

	cs := CompressedSection{Size: 4, Data: []byte{0xDE, 0xAD, 0xBE, 0xEF}}
	if _, err := cs.Inflate(); !errors.Is(err, ErrDecompress) {
		t.Fatalf("expected ErrDecompress, got %v", err)
	}
}
