package pfs

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// cursor walks a byte slice without copying. take returns subslices of the
// underlying buffer, so everything decoded through a cursor shares the
// lifetime of the input.
type cursor struct {
	buf []byte
	off int
}

func newCursor(data []byte) *cursor {
	return &cursor{buf: data}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.off
}

// rest returns the unconsumed tail of the buffer.
func (c *cursor) rest() []byte {
	return c.buf[c.off:]
}

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrShortInput, n)
	}
	if c.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortInput, n, c.remaining())
	}
	out := c.buf[c.off : c.off+n]
	c.off += n
	return out, nil
}

func (c *cursor) expect(tag []byte) error {
	if c.remaining() < len(tag) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortInput, len(tag), c.remaining())
	}
	if !bytes.Equal(c.buf[c.off:c.off+len(tag)], tag) {
		return fmt.Errorf("%w: want % X", ErrBadMagic, tag)
	}
	c.off += len(tag)
	return nil
}

func (c *cursor) u16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) u64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
