package extract

import "github.com/longsoft/pfsx/pkg/pfs"

// Classification labels, in cascade order.
const (
	KindEmpty      = "empty"
	KindCompressed = "zlib-compressed"
	KindSubsection = "subsection"
	KindRaw        = "raw"
)

// Kind reports how the extraction cascade would classify a section payload,
// without inflating or reassembling anything. Used for inspection output.
func Kind(data []byte) string {
	if len(data) == 0 {
		return KindEmpty
	}
	if _, _, err := pfs.DecodeCompressedSection(data); err == nil {
		return KindCompressed
	}
	if _, _, err := pfs.DecodeFile(data); err == nil {
		return KindSubsection
	}
	return KindRaw
}
