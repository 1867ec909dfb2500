package pfs

import "errors"

var (
	// ErrBadMagic reports a fixed tag that did not match at its expected position.
	ErrBadMagic = errors.New("pfs: magic mismatch")

	// ErrShortInput reports a buffer shorter than a declared or fixed size.
	ErrShortInput = errors.New("pfs: insufficient input")

	// ErrDecompress reports a compressed section whose payload does not inflate.
	ErrDecompress = errors.New("pfs: zlib decompression failed")

	// ErrBadChunk reports a section payload too small to be a chunk record.
	ErrBadChunk = errors.New("pfs: malformed chunk")
)
