package pfs

import (
	"encoding/binary"
	"strings"

	"github.com/google/uuid"
)

// Guid is the 16-byte section identifier. The first three fields are stored
// little-endian on the wire; the core attaches no semantics to the value.
type Guid struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func decodeGuid(c *cursor) (Guid, error) {
	var g Guid
	var err error
	if g.Data1, err = c.u32(); err != nil {
		return Guid{}, err
	}
	if g.Data2, err = c.u16(); err != nil {
		return Guid{}, err
	}
	if g.Data3, err = c.u16(); err != nil {
		return Guid{}, err
	}
	b, err := c.take(8)
	if err != nil {
		return Guid{}, err
	}
	copy(g.Data4[:], b)
	return g, nil
}

// UUID re-serializes the mixed-endian wire fields into RFC 4122 byte order.
func (g Guid) UUID() uuid.UUID {
	var b [16]byte
	binary.BigEndian.PutUint32(b[0:4], g.Data1)
	binary.BigEndian.PutUint16(b[4:6], g.Data2)
	binary.BigEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	return uuid.UUID(b)
}

func (g Guid) String() string {
	return strings.ToUpper(g.UUID().String())
}
