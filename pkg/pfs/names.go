package pfs

// Resolved display names for a container, as an index-keyed side table.
// Sections themselves stay immutable; callers merge names at emission time.
type Names struct {
	// BySection has one entry per container section; "" means unresolved.
	BySection []string

	// Trailing is the number of information-section bytes left after the
	// last record that decoded.
	Trailing int

	// Failed reports that the information section carried data but not a
	// single record decoded. All names stay empty in that case.
	Failed bool
}

// Name returns the resolved name for section i, or "" when unresolved.
func (n *Names) Name(i int) string {
	if i < 0 || i >= len(n.BySection) {
		return ""
	}
	return n.BySection[i]
}

// ResolveNames decodes the container's information section, which is by
// convention the last one, and assigns its names in order to the preceding
// sections. The information section itself is renamed "Section Info".
//
// When exactly one name is missing, the remaining section is labelled
// "Model Properties". This reproduces the condition observed in shipped
// containers; whether it is intended for every input is an open question,
// so the literal check is kept.
func ResolveNames(f *File) Names {
	n := Names{BySection: make([]string, len(f.Sections))}
	if len(f.Sections) == 0 {
		return n
	}

	info := &f.Sections[len(f.Sections)-1]
	if info.DataSize == 0 {
		return n
	}

	entries, rest := DecodeInfo(info.Data)
	n.Trailing = len(rest)
	if len(entries) == 0 && len(rest) > 0 {
		n.Failed = true
		n.Trailing = 0
		return n
	}

	n.BySection[len(n.BySection)-1] = "Section Info"

	others := len(f.Sections) - 1
	assigned := 0
	for _, e := range entries {
		if assigned >= others {
			break
		}
		n.BySection[assigned] = e.Name
		assigned++
	}
	if others > 0 && assigned == others-1 {
		n.BySection[assigned] = "Model Properties"
	}
	return n
}
