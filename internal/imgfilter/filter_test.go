package imgfilter

import "testing"

func TestRowNoneIsIdentity(t *testing.T) {
	cur := []byte{10, 20, 30, 40, 50, 60}
	dst := make([]byte, len(cur))
	Row(dst, cur, nil, None)
	for i := range cur {
		if dst[i] != cur[i] {
			t.Fatalf("None filter changed byte %d: got %d want %d", i, dst[i], cur[i])
		}
	}
}

func TestRowSubSameColourRow(t *testing.T) {
	// A row of three identical RGB triplets: after Sub, every triplet past
	// the first should filter to zero, since each pixel equals its left
	// neighbour.
	cur := []byte{5, 6, 7, 5, 6, 7, 5, 6, 7}
	dst := make([]byte, len(cur))
	Row(dst, cur, nil, Sub)
	want := []byte{5, 6, 7, 0, 0, 0, 0, 0, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d: got %d want %d", i, dst[i], want[i])
		}
	}
}

func TestRowUpWithNilPrevIsIdentity(t *testing.T) {
	cur := []byte{1, 2, 3, 4, 5, 6}
	dst := make([]byte, len(cur))
	Row(dst, cur, nil, Up)
	for i := range cur {
		if dst[i] != cur[i] {
			t.Fatalf("Up with nil prev byte %d: got %d want %d", i, dst[i], cur[i])
		}
	}
}

func TestRoundTripAllTypes(t *testing.T) {
	cur := []byte{1, 2, 3, 200, 150, 90, 0, 255, 128}
	prev := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for ftype := None; ftype <= Paeth; ftype++ {
		filtered := make([]byte, len(cur))
		Row(filtered, cur, prev, ftype)
		recon := make([]byte, len(filtered))
		copy(recon, filtered)
		Unfilter(recon, prev, ftype)
		for i := range cur {
			if recon[i] != cur[i] {
				t.Fatalf("ftype %d: byte %d round-trip got %d want %d", ftype, i, recon[i], cur[i])
			}
		}
	}
}

func TestRoundTripAllTypesFirstRow(t *testing.T) {
	cur := []byte{1, 2, 3, 200, 150, 90}
	for ftype := None; ftype <= Paeth; ftype++ {
		filtered := make([]byte, len(cur))
		Row(filtered, cur, nil, ftype)
		recon := make([]byte, len(filtered))
		copy(recon, filtered)
		Unfilter(recon, nil, ftype)
		for i := range cur {
			if recon[i] != cur[i] {
				t.Fatalf("ftype %d (first row): byte %d got %d want %d", ftype, i, recon[i], cur[i])
			}
		}
	}
}

func TestFilterV2AlwaysSub(t *testing.T) {
	width, height := 2, 3
	rgb := make([]byte, 3*width*height)
	for i := range rgb {
		rgb[i] = byte(i * 13)
	}
	dst := make([]byte, Stride(width)*height)
	FilterV2(dst, rgb, width, height)
	stride := Stride(width)
	for j := 0; j < height; j++ {
		if dst[j*stride] != Sub {
			t.Fatalf("row %d: filter type = %d, want Sub", j, dst[j*stride])
		}
	}
}

func TestFilterV3AlwaysNone(t *testing.T) {
	width, height := 4, 1
	rgb := make([]byte, 3*width*height)
	dst := make([]byte, Stride(width)*height)
	FilterV3(dst, rgb, width, height)
	if dst[0] != None {
		t.Fatalf("filter type = %d, want None", dst[0])
	}
	for i, b := range rgb {
		if dst[1+i] != b {
			t.Fatalf("byte %d: got %d want %d", i, dst[1+i], b)
		}
	}
}

func TestFilterV4PicksZeroForConstantImage(t *testing.T) {
	// A uniform image: Up (and Sub, past the first row/pixel) filters to
	// all zero, which should always win the MAD heuristic outright.
	width, height := 5, 4
	rgb := make([]byte, 3*width*height)
	for i := range rgb {
		rgb[i] = 42
	}
	dst := make([]byte, Stride(width)*height)
	FilterV4(dst, rgb, width, height)
	stride := Stride(width)
	for j := 1; j < height; j++ {
		row := dst[j*stride : (j+1)*stride]
		for _, b := range row[1:] {
			if b != 0 {
				t.Fatalf("row %d: expected all-zero filtered bytes, got %v", j, row[1:])
			}
		}
	}
}

func TestMadScoreSymmetric(t *testing.T) {
	// A byte representing -1 (255) should score the same as +1.
	a := madScore([]byte{1})
	b := madScore([]byte{255})
	if a != b {
		t.Fatalf("madScore(1) = %d, madScore(255) = %d, want equal", a, b)
	}
}
