package pfs

import "testing"

func TestVersionString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vt   [4]byte
		ver  [4]uint16
		want string
	}{
		{"hex and decimal", [4]byte{'A', 'N', ' ', 0}, [4]uint16{0x02, 5, 9, 9}, "2.5."},
		{"all decimal", [4]byte{'N', 'N', 'N', 'N'}, [4]uint16{1, 10, 2, 300}, "1.10.2.300."},
		{"hex uppercase", [4]byte{'A', 0, 0, 0}, [4]uint16{0x1A, 0, 0, 0}, "1A."},
		{"space stops scan", [4]byte{'N', ' ', 'N', 'N'}, [4]uint16{3, 4, 5, 6}, "3."},
		{"nul stops scan", [4]byte{0, 'N', 'N', 'N'}, [4]uint16{3, 4, 5, 6}, "0."},
		{"unknown tag discards", [4]byte{'A', 'Z', 'N', 'N'}, [4]uint16{1, 2, 3, 4}, "0."},
		{"unknown first tag", [4]byte{'Q', 'N', 'N', 'N'}, [4]uint16{1, 2, 3, 4}, "0."},
	}

	for _, tc := range tests {
		s := &Section{VersionType: tc.vt, Version: tc.ver}
		if got := s.VersionString(); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
