package pfs

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeChunk(t *testing.T) {
	t.Parallel()

	ch, err := DecodeChunk(buildChunk(7, []byte("fragment")))
	if err != nil {
		t.Fatalf("decode chunk: %v", err)
	}
	if ch.Order != 7 {
		t.Fatalf("order: got %d want 7", ch.Order)
	}
	if !bytes.Equal(ch.Data, []byte("fragment")) {
		t.Fatalf("payload: got %q", ch.Data)
	}
}

func TestDecodeChunkEmptyPayload(t *testing.T) {
	t.Parallel()

	ch, err := DecodeChunk(buildChunk(0, nil))
	if err != nil {
		t.Fatalf("decode chunk: %v", err)
	}
	if len(ch.Data) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(ch.Data))
	}
}

func TestDecodeChunkTooShort(t *testing.T) {
	t.Parallel()

	if _, err := DecodeChunk(make([]byte, chunkHeaderSize-1)); !errors.Is(err, ErrBadChunk) {
		t.Fatalf("expected ErrBadChunk, got %v", err)
	}
}
