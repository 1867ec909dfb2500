package pfs

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Input is a raw firmware image held in memory for decoding. Every slice a
// decode produces points into Data, so an Input must stay open for as long
// as any decoded structure from it is in use.
type Input struct {
	Data    []byte
	mmapped bool
}

// Open maps a firmware file read-only. If mmap is unavailable, it falls
// back to ReadAt-based loading. The returned input must be closed to
// release any mapping.
func Open(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("%w: file too large to map", ErrShortInput)
	}
	size := int(size64)
	if size < headerSize+footerSize {
		return nil, fmt.Errorf("%w: %d bytes is smaller than an empty container", ErrShortInput, size)
	}

	// Prefer mmap for zero-copy section views.
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		return &Input{Data: data, mmapped: true}, nil
	}

	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &Input{Data: data}, nil
}

// OpenReaderAt loads a firmware image from a random-access reader without mmap.
func OpenReaderAt(r io.ReaderAt, size int64) (*Input, error) {
	if size < 0 || size > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%w: bad input size %d", ErrShortInput, size)
	}
	data, err := readAllAt(r, int(size))
	if err != nil {
		return nil, err
	}
	return &Input{Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Close releases the mapping, if any. Decoded views into Data become
// invalid once Close returns.
func (in *Input) Close() error {
	if in == nil || in.Data == nil {
		return nil
	}
	var err error
	if in.mmapped {
		err = unix.Munmap(in.Data)
	}
	in.Data = nil
	in.mmapped = false
	return err
}
