// Package pfs decodes the PFS firmware update container format.
//
// A PFS file is a little-endian sequence of a fixed header, a run of
// variable-length sections and a fixed footer. Section payloads may
// themselves be zlib-compressed PFS containers or chunked sub-containers,
// so one file unpacks into a tree of artifacts. The package describes
// structure only; it never re-encodes a container.
package pfs

// Wire-level magic values. These must never change.
const (
	// MagicHeader prefixes every PFS container.
	MagicHeader = "PFS.HDR."

	// MagicFooter terminates the section run of every PFS container.
	MagicFooter = "PFS.FTR."
)

// MagicCompressed marks a zlib-compressed section payload. It follows the
// 4-byte declared payload size inside the compressed-section wrapper.
var MagicCompressed = []byte{0xAA, 0xEE, 0xAA, 0x76, 0x1B, 0xEC, 0xBB, 0x20, 0xF1, 0xE6, 0x51}

const (
	headerSize = 16 // magic(8) + version(4) + data_size(4)
	footerSize = 16 // data_size(4) + checksum(4) + magic(8)

	// Fixed portion of a section record, before the optional blobs.
	sectionFixedSize = 16 + 4 + 4 + 8 + 8 + 16 + 16

	// Chunk records carry their payload after a fixed-size header region.
	chunkHeaderSize = 0x248
	chunkOrderOff   = 0x3E
)
