package extract

import (
	"fmt"
	"strings"
)

// sectionStem is the per-section part of every artifact name: the 1-based
// index joined with the resolved name (spaces become underscores), or a
// generic label when no name was resolved.
func sectionStem(index int, name string) string {
	if name == "" {
		return fmt.Sprintf("section_%d", index)
	}
	return fmt.Sprintf("%d_%s", index, strings.ReplaceAll(name, " ", "_"))
}
