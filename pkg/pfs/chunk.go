package pfs

import "fmt"

// Chunk is one fragment of a reassembled section payload. Order determines
// the concatenation position; Data is a view into the chunk record after
// its fixed-size header region.
type Chunk struct {
	Order uint16
	Data  []byte
}

// DecodeChunk reads a chunk record. The order number sits at a fixed offset
// inside the header region; the payload is everything after it.
func DecodeChunk(data []byte) (Chunk, error) {
	if len(data) < chunkHeaderSize {
		return Chunk{}, fmt.Errorf("%w: need %d header bytes, have %d", ErrBadChunk, chunkHeaderSize, len(data))
	}
	c := newCursor(data)
	if _, err := c.take(chunkOrderOff); err != nil {
		return Chunk{}, err
	}
	order, err := c.u16()
	if err != nil {
		return Chunk{}, err
	}
	if _, err := c.take(chunkHeaderSize - chunkOrderOff - 2); err != nil {
		return Chunk{}, err
	}
	return Chunk{Order: order, Data: c.rest()}, nil
}
