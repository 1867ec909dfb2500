package pfs

import "testing"

func TestGuidString(t *testing.T) {
	t.Parallel()

	g := Guid{
		Data1: 0x11223344,
		Data2: 0x5566,
		Data3: 0x7788,
		Data4: [8]byte{0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00},
	}
	want := "11223344-5566-7788-99AA-BBCCDDEEFF00"
	if got := g.String(); got != want {
		t.Fatalf("guid string: got %s want %s", got, want)
	}
}

func TestGuidDecode(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0x44, 0x33, 0x22, 0x11, // data1, little-endian
		0x66, 0x55, // data2
		0x88, 0x77, // data3
		1, 2, 3, 4, 5, 6, 7, 8,
	}
	g, err := decodeGuid(newCursor(raw))
	if err != nil {
		t.Fatalf("decode guid: %v", err)
	}
	if g.Data1 != 0x11223344 || g.Data2 != 0x5566 || g.Data3 != 0x7788 {
		t.Fatalf("guid fields: %+v", g)
	}
	if g.Data4 != [8]byte{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Fatalf("guid data4: %v", g.Data4)
	}
}
