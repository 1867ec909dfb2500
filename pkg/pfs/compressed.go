package pfs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// CompressedSection is a section payload wrapped in the compressed-section
// magic. Data points at the zlib stream inside the original buffer; the
// 16-byte trailer after it is carried on the wire but not validated.
type CompressedSection struct {
	Size uint32
	Data []byte
}

// DecodeCompressedSection consumes a compressed-section wrapper from the
// front of data and returns the unconsumed remainder.
func DecodeCompressedSection(data []byte) (CompressedSection, []byte, error) {
	c := newCursor(data)
	var cs CompressedSection
	var err error

	if cs.Size, err = c.u32(); err != nil {
		return CompressedSection{}, nil, err
	}
	if err := c.expect(MagicCompressed); err != nil {
		return CompressedSection{}, nil, err
	}
	if _, err := c.take(1); err != nil { // padding byte
		return CompressedSection{}, nil, err
	}
	if cs.Data, err = c.take(int(cs.Size)); err != nil {
		return CompressedSection{}, nil, err
	}
	if _, err := c.take(16); err != nil { // unvalidated trailer
		return CompressedSection{}, nil, err
	}
	return cs, c.rest(), nil
}

// Inflate decompresses the enclosed zlib stream into a freshly owned buffer.
func (cs *CompressedSection) Inflate() ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(cs.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	return out, nil
}
