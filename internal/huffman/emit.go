package huffman

import (
	"github.com/cosnicolaou/pngenc/internal/bitio"
	"github.com/cosnicolaou/pngenc/internal/lzenc"
)

// EmitTokens writes one code stream's tokens as fixed-Huffman bits,
// without a block header or end-of-block marker — those are the caller's
// responsibility, since V4-MC concatenates several token streams into one
// block and only the final fragment carries EOB (spec.md §4.F).
func EmitTokens(w *bitio.Writer, tokens []lzenc.Token) {
	for _, tok := range tokens {
		if tok.Match {
			WriteMatch(w, tok.Count, tok.Distance)
		} else {
			WriteLiteral(w, tok.Byte)
		}
	}
}
