package pfs

import "fmt"

// File is one fully decoded PFS container: a header, the ordered section
// run and the footer that terminated it. Section payloads inside a File are
// views into the buffer DecodeFile was given.
type File struct {
	Header   Header
	Sections []Section
	Footer   Footer
}

// DecodeFile decodes a complete container from the front of data. Sections
// are consumed until the footer magic is recognized at the current
// position; bytes left after the footer are returned to the caller and are
// not an error.
func DecodeFile(data []byte) (*File, []byte, error) {
	h, rest, err := DecodeHeader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("header: %w", err)
	}

	f := &File{Header: h}
	for {
		if ftr, after, err := DecodeFooter(rest); err == nil {
			f.Footer = ftr
			return f, after, nil
		}
		s, after, err := DecodeSection(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("section %d: %w", len(f.Sections), err)
		}
		f.Sections = append(f.Sections, s)
		rest = after
	}
}
