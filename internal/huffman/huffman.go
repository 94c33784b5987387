// Package huffman emits RFC 1951 fixed Huffman codes for PNG's deflate
// block: literal bytes, length/distance back-reference pairs, and the
// end-of-block marker. Codes are packed most-significant-bit-first, extra
// bits least-significant-bit-first, via internal/bitio.
package huffman

import (
	"fmt"

	"github.com/cosnicolaou/pngenc/internal/bitio"
)

// lengthEntry describes one length code (257..285): the smallest count it
// covers and how many extra bits follow the code.
type lengthEntry struct {
	code  uint32
	extra uint
	base  int
}

// lengthTable is ported field-for-field from the original encoder's
// encodeCount break points (3..10, 11..18, ..., 258), re-expressed as a
// table instead of an if/else chain.
var lengthTable = [...]lengthEntry{
	{257, 0, 3}, {258, 0, 4}, {259, 0, 5}, {260, 0, 6},
	{261, 0, 7}, {262, 0, 8}, {263, 0, 9}, {264, 0, 10},
	{265, 1, 11}, {266, 1, 13}, {267, 1, 15}, {268, 1, 17},
	{269, 2, 19}, {270, 2, 23}, {271, 2, 27}, {272, 2, 31},
	{273, 3, 35}, {274, 3, 43}, {275, 3, 51}, {276, 3, 59},
	{277, 4, 67}, {278, 4, 83}, {279, 4, 99}, {280, 4, 115},
	{281, 5, 131}, {282, 5, 163}, {283, 5, 195}, {284, 5, 227},
	{285, 0, 258},
}

type distEntry struct {
	code  uint32
	extra uint
	base  int
}

// distTable is ported field-for-field from encodeDistance's break points
// (1..4, 5..8, ..., 24577..32768).
var distTable = [...]distEntry{
	{0, 0, 1}, {1, 0, 2}, {2, 0, 3}, {3, 0, 4},
	{4, 1, 5}, {5, 1, 7},
	{6, 2, 9}, {7, 2, 13},
	{8, 3, 17}, {9, 3, 25},
	{10, 4, 33}, {11, 4, 49},
	{12, 5, 65}, {13, 5, 97},
	{14, 6, 129}, {15, 6, 193},
	{16, 7, 257}, {17, 7, 385},
	{18, 8, 513}, {19, 8, 769},
	{20, 9, 1025}, {21, 9, 1537},
	{22, 10, 2049}, {23, 10, 3073},
	{24, 11, 4097}, {25, 11, 6145},
	{26, 12, 8193}, {27, 12, 12289},
	{28, 13, 16385}, {29, 13, 24577},
}

// literalCode returns the fixed-Huffman code and bit width for literal byte
// b, per RFC 1951 §3.2.6: symbols 0..143 get an 8-bit code (value+0x30),
// symbols 144..255 get a 9-bit code (value-144+0x190). Matches
// encodeLiteralTriplet's per-channel encoding exactly.
func literalCode(b byte) (code uint32, bits uint) {
	if b < 144 {
		return uint32(b) + 0x30, 8
	}
	return uint32(b) - 144 + 0x190, 9
}

// WriteLiteral emits one literal byte.
func WriteLiteral(w *bitio.Writer, b byte) {
	code, bits := literalCode(b)
	w.WriteMSB(code, bits)
}

// WriteRGB emits one literal RGB triplet as three literal codes, red first.
func WriteRGB(w *bitio.Writer, r, g, b byte) {
	WriteLiteral(w, r)
	WriteLiteral(w, g)
	WriteLiteral(w, b)
}

// WriteEndOfBlock emits symbol 256, the 7-bit all-zero fixed-Huffman code.
func WriteEndOfBlock(w *bitio.Writer) {
	w.WriteMSB(0, 7)
}

// lengthCodeFor finds the table row covering count, the largest base not
// exceeding it.
func lengthCodeFor(count int) lengthEntry {
	e := lengthTable[0]
	for _, row := range lengthTable {
		if row.base > count {
			break
		}
		e = row
	}
	return e
}

func distCodeFor(distance int) distEntry {
	e := distTable[0]
	for _, row := range distTable {
		if row.base > distance {
			break
		}
		e = row
	}
	return e
}

// codeBits returns the fixed-Huffman code bits for length symbols 256..287:
// 256..279 are 7 bits (code = symbol-256), 280..287 are 8 bits
// (code = 0xC0 + symbol-280), per RFC 1951 §3.2.6.
func codeBits(symbol uint32) (code uint32, bits uint) {
	if symbol < 280 {
		return symbol - 256, 7
	}
	return 0xC0 + (symbol - 280), 8
}

// WriteMatch emits a length/distance back-reference: count bytes copied
// from distance bytes back. count must be in [3,258], distance in
// [1,32768], the same ranges the LZ77 matcher (internal/lzenc) guarantees.
// A value outside those ranges means a matcher produced an impossible
// token; WriteMatch panics rather than emit a corrupt code, matching
// InternalInvariantViolation's explicit-assertion policy.
func WriteMatch(w *bitio.Writer, count, distance int) {
	if count < 3 || count > 258 {
		panic(fmt.Sprintf("huffman: match count %d outside [3,258]", count))
	}
	if distance < 1 || distance > 32768 {
		panic(fmt.Sprintf("huffman: match distance %d outside [1,32768]", distance))
	}
	le := lengthCodeFor(count)
	code, bits := codeBits(le.code)
	w.WriteMSB(code, bits)
	if le.extra > 0 {
		w.WriteLSB(uint32(count-le.base), le.extra)
	}

	de := distCodeFor(distance)
	w.WriteMSB(de.code, 5)
	if de.extra > 0 {
		w.WriteLSB(uint32(distance-de.base), de.extra)
	}
}
