package pfs

import "fmt"

// Section is one record of a PFS container. The four payload slices are
// zero-copy views into the decoded input buffer and must not outlive it; a
// slice is non-nil exactly when its declared size is nonzero.
type Section struct {
	Guid          Guid
	HeaderVersion uint32
	VersionType   [4]byte
	Version       [4]uint16
	Reserved      uint64
	DataSize      uint32
	DataSigSize   uint32
	MetaSize      uint32
	MetaSigSize   uint32
	Unknown       [16]byte

	Data    []byte
	DataSig []byte
	Meta    []byte
	MetaSig []byte
}

// DecodeSection consumes one section record from the front of data and
// returns the unconsumed remainder.
func DecodeSection(data []byte) (Section, []byte, error) {
	c := newCursor(data)
	s, err := decodeSection(c)
	if err != nil {
		return Section{}, nil, err
	}
	return s, c.rest(), nil
}

func decodeSection(c *cursor) (Section, error) {
	var s Section
	var err error

	if s.Guid, err = decodeGuid(c); err != nil {
		return Section{}, err
	}
	if s.HeaderVersion, err = c.u32(); err != nil {
		return Section{}, err
	}
	vt, err := c.take(4)
	if err != nil {
		return Section{}, err
	}
	copy(s.VersionType[:], vt)
	for i := range s.Version {
		if s.Version[i], err = c.u16(); err != nil {
			return Section{}, err
		}
	}
	if s.Reserved, err = c.u64(); err != nil {
		return Section{}, err
	}
	if s.DataSize, err = c.u32(); err != nil {
		return Section{}, err
	}
	if s.DataSigSize, err = c.u32(); err != nil {
		return Section{}, err
	}
	if s.MetaSize, err = c.u32(); err != nil {
		return Section{}, err
	}
	if s.MetaSigSize, err = c.u32(); err != nil {
		return Section{}, err
	}
	unk, err := c.take(16)
	if err != nil {
		return Section{}, err
	}
	copy(s.Unknown[:], unk)

	// Blobs follow in fixed order, each present iff its size is nonzero.
	if s.Data, err = takeBlob(c, s.DataSize); err != nil {
		return Section{}, fmt.Errorf("data blob: %w", err)
	}
	if s.DataSig, err = takeBlob(c, s.DataSigSize); err != nil {
		return Section{}, fmt.Errorf("data signature blob: %w", err)
	}
	if s.Meta, err = takeBlob(c, s.MetaSize); err != nil {
		return Section{}, fmt.Errorf("metadata blob: %w", err)
	}
	if s.MetaSig, err = takeBlob(c, s.MetaSigSize); err != nil {
		return Section{}, fmt.Errorf("metadata signature blob: %w", err)
	}
	return s, nil
}

func takeBlob(c *cursor, size uint32) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	return c.take(int(size))
}

// VersionString renders the section version from the type tags and version
// numbers in lockstep: 'A' renders the number in hexadecimal, 'N' in
// decimal, a space or NUL stops the scan, and any other tag discards the
// whole result. An empty result renders as "0.".
func (s *Section) VersionString() string {
	out := ""
scan:
	for i, t := range s.VersionType {
		switch t {
		case 'A':
			out += fmt.Sprintf("%X.", s.Version[i])
		case 'N':
			out += fmt.Sprintf("%d.", s.Version[i])
		case ' ', 0x00:
			break scan
		default:
			out = ""
			break scan
		}
	}
	if out == "" {
		return "0."
	}
	return out
}
