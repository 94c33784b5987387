package imgfilter

// Stride returns the number of bytes in one filtered row: one filter-type
// byte plus 3*width pixel bytes.
func Stride(width int) int {
	return 3*width + 1
}

// FilterV2 emits filter type Sub for every row, per spec.md §4.D. dst
// must be length Stride(width)*height; rgb is the raw raster.
func FilterV2(dst, rgb []byte, width, height int) {
	fixed(dst, rgb, width, height, Sub)
}

// FilterV3 emits filter type None for every row.
func FilterV3(dst, rgb []byte, width, height int) {
	fixed(dst, rgb, width, height, None)
}

func fixed(dst, rgb []byte, width, height int, ftype byte) {
	rowBytes := 3 * width
	stride := Stride(width)
	var prev []byte
	for j := 0; j < height; j++ {
		cur := rgb[j*rowBytes : (j+1)*rowBytes]
		out := dst[j*stride : (j+1)*stride]
		out[0] = ftype
		Row(out[1:], cur, prev, ftype)
		prev = cur
	}
}

// FilterV4 selects, independently for each row, whichever of the five
// filter types minimizes the sum of absolute values of the filtered
// bytes interpreted as signed (the MAD heuristic recommended by the PNG
// specification and named in spec.md §4.D).
func FilterV4(dst, rgb []byte, width, height int) {
	rowBytes := 3 * width
	stride := Stride(width)
	scratch := make([]byte, rowBytes*5)
	var prev []byte
	for j := 0; j < height; j++ {
		cur := rgb[j*rowBytes : (j+1)*rowBytes]
		out := dst[j*stride : (j+1)*stride]
		best, bestScore := byte(0), -1
		for t := byte(0); t <= Paeth; t++ {
			cand := scratch[int(t)*rowBytes : int(t+1)*rowBytes]
			Row(cand, cur, prev, t)
			score := madScore(cand)
			if bestScore < 0 || score < bestScore {
				best, bestScore = t, score
			}
		}
		out[0] = best
		copy(out[1:], scratch[int(best)*rowBytes:int(best+1)*rowBytes])
		prev = cur
	}
}

// madScore is the minimum-sum-of-absolute-differences heuristic: each
// filtered byte is interpreted as a signed two's-complement value (so
// bytes near 0 or near 256 both count as "small", since both represent a
// small predictive error) and the scores are summed.
func madScore(filtered []byte) int {
	sum := 0
	for _, b := range filtered {
		sum += abs(int(int8(b)))
	}
	return sum
}
