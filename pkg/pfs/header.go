package pfs

// Header is the fixed 16-byte record that opens every PFS container.
type Header struct {
	Version  uint32
	DataSize uint32
}

// Footer is the fixed 16-byte record that closes every PFS container.
// The checksum is carried through but not verified.
type Footer struct {
	DataSize uint32
	Checksum uint32
}

// DecodeHeader consumes a header from the front of data and returns the
// unconsumed remainder.
func DecodeHeader(data []byte) (Header, []byte, error) {
	c := newCursor(data)
	if err := c.expect([]byte(MagicHeader)); err != nil {
		return Header{}, nil, err
	}
	var h Header
	var err error
	if h.Version, err = c.u32(); err != nil {
		return Header{}, nil, err
	}
	if h.DataSize, err = c.u32(); err != nil {
		return Header{}, nil, err
	}
	return h, c.rest(), nil
}

// DecodeFooter consumes a footer from the front of data and returns the
// unconsumed remainder. The magic sits after the two counters, so a footer
// is only recognized when the suffix tag matches.
func DecodeFooter(data []byte) (Footer, []byte, error) {
	c := newCursor(data)
	var f Footer
	var err error
	if f.DataSize, err = c.u32(); err != nil {
		return Footer{}, nil, err
	}
	if f.Checksum, err = c.u32(); err != nil {
		return Footer{}, nil, err
	}
	if err := c.expect([]byte(MagicFooter)); err != nil {
		return Footer{}, nil, err
	}
	return f, c.rest(), nil
}
