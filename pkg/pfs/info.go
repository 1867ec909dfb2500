package pfs

import "unicode/utf16"

// InfoEntry is one record of an information section payload. By convention
// a container's last section carries these records, giving display names
// for the sections that precede it.
type InfoEntry struct {
	HeaderVersion uint32
	Guid          Guid
	Version       [4]uint16
	VersionType   [4]byte
	Name          string
}

// DecodeInfoEntry consumes one information record from the front of data
// and returns the unconsumed remainder. The name is name_len UTF-16LE code
// units, decoded lossily, followed by a mandatory two-byte terminator.
func DecodeInfoEntry(data []byte) (InfoEntry, []byte, error) {
	c := newCursor(data)
	var e InfoEntry
	var err error

	if e.HeaderVersion, err = c.u32(); err != nil {
		return InfoEntry{}, nil, err
	}
	if e.Guid, err = decodeGuid(c); err != nil {
		return InfoEntry{}, nil, err
	}
	for i := range e.Version {
		if e.Version[i], err = c.u16(); err != nil {
			return InfoEntry{}, nil, err
		}
	}
	vt, err := c.take(4)
	if err != nil {
		return InfoEntry{}, nil, err
	}
	copy(e.VersionType[:], vt)

	nameLen, err := c.u16()
	if err != nil {
		return InfoEntry{}, nil, err
	}
	units := make([]uint16, nameLen)
	for i := range units {
		if units[i], err = c.u16(); err != nil {
			return InfoEntry{}, nil, err
		}
	}
	if err := c.expect([]byte{0x00, 0x00}); err != nil {
		return InfoEntry{}, nil, err
	}
	e.Name = string(utf16.Decode(units))
	return e, c.rest(), nil
}

// DecodeInfo decodes as many information records as the payload holds,
// stopping at the first record that does not decode. It never fails: a
// malformed payload simply yields fewer records and a nonzero remainder.
func DecodeInfo(data []byte) ([]InfoEntry, []byte) {
	var entries []InfoEntry
	rest := data
	for len(rest) > 0 {
		e, after, err := DecodeInfoEntry(rest)
		if err != nil {
			break
		}
		entries = append(entries, e)
		rest = after
	}
	return entries, rest
}
