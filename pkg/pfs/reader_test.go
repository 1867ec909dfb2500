package pfs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRoundTrip(t *testing.T) {
	t.Parallel()

	buf := buildContainer(t,
		buildSection(t, Guid{Data1: 1}, [4]byte{}, [4]uint16{}, []byte("data"), nil, nil, nil),
	)
	path := filepath.Join(t.TempDir(), "firmware.bin")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	in, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			t.Fatalf("close: %v", cerr)
		}
	}()

	if !bytes.Equal(in.Data, buf) {
		t.Fatalf("mapped data mismatch: %d bytes vs %d", len(in.Data), len(buf))
	}
	f, _, err := DecodeFile(in.Data)
	if err != nil {
		t.Fatalf("decode mapped file: %v", err)
	}
	if len(f.Sections) != 1 {
		t.Fatalf("section count: got %d want 1", len(f.Sections))
	}
}

func TestOpenTooSmall(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tiny.bin")
	if err := os.WriteFile(path, []byte("PFS"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for undersized input")
	}
}

func TestOpenReaderAt(t *testing.T) {
	t.Parallel()

	buf := buildContainer(t)
	in, err := OpenReaderAt(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		t.Fatalf("open readerat: %v", err)
	}
	defer func() { _ = in.Close() }()

	if in.mmapped {
		t.Fatal("OpenReaderAt should not mmap")
	}
	if !bytes.Equal(in.Data, buf) {
		t.Fatal("data mismatch")
	}
}
