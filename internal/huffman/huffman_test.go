package huffman

import (
	"testing"

	"github.com/cosnicolaou/pngenc/internal/bitio"
)

func TestWriteEndOfBlockIsSevenZeroBits(t *testing.T) {
	w := bitio.NewWriter(1)
	WriteEndOfBlock(w)
	w.Flush()
	if got := w.Bytes(); len(got) != 1 || got[0] != 0 {
		t.Fatalf("got %v, want [0x00]", got)
	}
}

func TestLiteralCodeBreakpoint(t *testing.T) {
	if code, bits := literalCode(143); code != 143+0x30 || bits != 8 {
		t.Errorf("literalCode(143) = %03X/%d, want %03X/8", code, bits, 143+0x30)
	}
	if code, bits := literalCode(144); code != 0x190 || bits != 9 {
		t.Errorf("literalCode(144) = %03X/%d, want %03X/9", code, bits, 0x190)
	}
}

func TestLengthCodeForBoundaries(t *testing.T) {
	cases := []struct {
		count     int
		wantCode  uint32
		wantExtra uint
		wantBase  int
	}{
		{3, 257, 0, 3},
		{10, 264, 0, 10},
		{11, 265, 1, 11},
		{66, 276, 3, 59},
		{67, 277, 4, 67},
		{114, 279, 4, 99},
		{115, 280, 4, 115},
		{258, 285, 0, 258},
	}
	for _, c := range cases {
		e := lengthCodeFor(c.count)
		if e.code != c.wantCode || e.extra != c.wantExtra || e.base != c.wantBase {
			t.Errorf("lengthCodeFor(%d) = %+v, want code=%d extra=%d base=%d",
				c.count, e, c.wantCode, c.wantExtra, c.wantBase)
		}
	}
}

func TestDistCodeForBoundaries(t *testing.T) {
	cases := []struct {
		distance int
		wantCode uint32
		wantBase int
	}{
		{1, 0, 1},
		{4, 3, 4},
		{5, 4, 5},
		{32768, 29, 24577},
	}
	for _, c := range cases {
		e := distCodeFor(c.distance)
		if e.code != c.wantCode || e.base != c.wantBase {
			t.Errorf("distCodeFor(%d) = %+v, want code=%d base=%d", c.distance, e, c.wantCode, c.wantBase)
		}
	}
}

func TestWriteMatchMaxLengthAndDistanceWritesBytes(t *testing.T) {
	w := bitio.NewWriter(4)
	WriteMatch(w, 258, 32768)
	w.Flush()
	if len(w.Bytes()) == 0 {
		t.Fatal("expected some bytes written")
	}
}
