package lzenc

// EncodeV3 searches for matches over raw (unfiltered) pixel triplets using
// only the current row (positions left of the current pixel) and the
// immediately preceding row, ported from the original encoder's writeIDAT3
// match loop: scan the current row right-to-left, then the previous row
// right-to-left, for the first equal RGB triplet; extend the match while
// it continues, relocating the source once per failed extension before
// flushing. prevRow is nil for a band's first row (or the image's actual
// top row), which this package treats identically to "no match found" —
// never matching, the same effect the original gets from its all-ones
// sentinel buffer, but expressed as an explicit nil instead of a magic
// value that merely happens to lie outside the RGB domain (see the Open
// Question decision in DESIGN.md).
//
// distance is reported in bytes, already folded through the +3W+1
// previous-row adjustment for the inserted filter-type byte between rows.
func EncodeV3(curRow, prevRow []byte, width int) []Token {
	tokens := make([]Token, 0, width)

	rgbAt := func(row []byte, i int) (int, bool) {
		if row == nil || i < 0 || i >= width {
			return 0, false
		}
		off := 3 * i
		return int(row[off])<<16 | int(row[off+1])<<8 | int(row[off+2]), true
	}

	matchSrcJ := 0 // 0 = current row, 1 = previous row
	matchSrcI := 0
	matchDstI := 0
	matchLength := 0

	flush := func() {
		if matchLength == 0 {
			return
		}
		count := 3 * matchLength
		distance := 3 * (matchDstI - matchSrcI)
		if matchSrcJ > 0 {
			distance += 3*width + 1
		}
		tokens = append(tokens, match(count, distance))
		matchLength = 0
	}

	for i := 0; i < width; i++ {
		rgb, _ := rgbAt(curRow, i)

		for {
			redo := false
			emitMatch := false
			emitVerbatim := false

			switch {
			case matchLength == 0:
				k := i - 1
				srcJ := 0
				for k >= 0 {
					v, _ := rgbAt(curRow, k)
					if v == rgb {
						break
					}
					k--
				}
				if k < 0 {
					srcJ = 1
					k = width - 1
					for k >= 0 {
						v, ok := rgbAt(prevRow, k)
						if ok && v == rgb {
							break
						}
						k--
					}
				}
				if k >= 0 {
					matchSrcJ = srcJ
					matchSrcI = k
					matchDstI = i
					matchLength = 1
					if i == width-1 {
						emitMatch = true
					}
				} else {
					emitVerbatim = true
				}

			case matchLength >= 86:
				emitMatch = true
				redo = true

			default:
				rowAt := func(j, idx int) (int, bool) {
					if j == 0 {
						return rgbAt(curRow, idx)
					}
					return rgbAt(prevRow, idx)
				}
				if v, ok := rowAt(matchSrcJ, matchSrcI+matchLength); ok && matchSrcI+matchLength < width && v == rgb {
					matchLength++
					if i == width-1 {
						emitMatch = true
					}
				} else {
					emitMatch = true
					redo = true

					k := matchSrcI - 1
					found := false
					for m := matchSrcJ; !found && m < 2; m++ {
						for ; !found && k >= 0; k-- {
							fail := false
							for l := 0; l <= matchLength; l++ {
								dv, _ := rgbAt(curRow, matchDstI+l)
								sv, ok := rowAt(m, k+l)
								if !ok || dv != sv {
									fail = true
									break
								}
							}
							if !fail {
								matchSrcJ = m
								matchSrcI = k
								matchLength++
								found = true
								emitMatch = false
								redo = false
							}
						}
						k = width - 1
					}
				}
			}

			if (i == width-1 && matchLength > 0) || emitMatch {
				flush()
			}
			if emitVerbatim {
				off := 3 * i
				tokens = append(tokens, literal(curRow[off]), literal(curRow[off+1]), literal(curRow[off+2]))
			}
			if !redo {
				break
			}
		}
	}
	return tokens
}
