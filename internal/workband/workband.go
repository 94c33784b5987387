// Package workband partitions a raster into contiguous horizontal row
// bands, filters and LZ-encodes each band on a fixed-size worker pool, and
// joins the results into one ordered code-stream/Adler-32 pair per
// spec.md §4.H. Grounded on the teacher's Decompressor worker pool in
// parallel.go (a channel of job descriptors drained by a fixed set of
// goroutines, joined with a sync.WaitGroup), simplified from a streaming
// reassembly pipeline (container/heap-ordered, for an unbounded sequence
// of blocks arriving out of order) to a pure fork/join barrier: a band's
// index is known before dispatch and its result slot is fixed, so no
// reordering step is needed.
package workband

import (
	"sync"

	"github.com/cosnicolaou/pngenc/internal/checksum"
	"github.com/cosnicolaou/pngenc/internal/imgfilter"
	"github.com/cosnicolaou/pngenc/internal/lzenc"
)

// Event reports one band's completion, the Go equivalent of the teacher's
// Progress channel, wired here through a plain callback instead of a
// channel since the caller already knows the fixed total (T) up front.
type Event struct {
	Band, Total int
}

// Band is one band's result: its filtered bytes (for Adler-32), its code
// stream, and the row range it covers.
type Band struct {
	StartRow, EndRow int
	Filtered         []byte
	Tokens           []lzenc.Token
}

// Bounds computes the [start, end) row range for band t of T over height
// rows, per spec.md §4.H's "rows [t*H/T, (t+1)*H/T)".
func Bounds(t, total, height int) (start, end int) {
	start = t * height / total
	end = (t + 1) * height / total
	return start, end
}

// Plan runs the V4 filter-plus-LZ pipeline across workers bands over a
// raster of the given width/height, calling progress (if non-nil) after
// each band completes. workers is clamped to [1, bands]; bands <= 0 is
// treated as 1 (the single-threaded case).
func Plan(pix []byte, width, height, bands, workers int, progress func(Event)) []Band {
	if bands < 1 {
		bands = 1
	}
	if workers < 1 || workers > bands {
		workers = bands
	}

	results := make([]Band, bands)
	jobs := make(chan int, bands)
	for t := 0; t < bands; t++ {
		jobs <- t
	}
	close(jobs)

	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for t := range jobs {
				results[t] = filterAndMatchBand(pix, width, height, t, bands)
				if progress != nil {
					mu.Lock()
					progress(Event{Band: t, Total: bands})
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return results
}

func filterAndMatchBand(pix []byte, width, height, t, bands int) Band {
	start, end := Bounds(t, bands, height)
	rowBytes := 3 * width
	bandHeight := end - start

	filtered := make([]byte, imgfilter.Stride(width)*bandHeight)
	if bandHeight > 0 && start == 0 {
		imgfilter.FilterV4(filtered, pix[start*rowBytes:end*rowBytes], width, bandHeight)
	} else if bandHeight > 0 {
		// Filter from the row above the band, so the band's first row is
		// predicted from the real preceding row exactly as a decoder
		// reconstructs it, then drop that extra leading row.
		withAbove := make([]byte, imgfilter.Stride(width)*(bandHeight+1))
		imgfilter.FilterV4(withAbove, pix[(start-1)*rowBytes:end*rowBytes], width, bandHeight+1)
		copy(filtered, withAbove[imgfilter.Stride(width):])
	}

	tokens := lzenc.EncodeV4(filtered)
	return Band{StartRow: start, EndRow: end, Filtered: filtered, Tokens: tokens}
}

// CombinedAdler32 folds each band's Adler-32 into the checksum of the
// whole filtered buffer, in band order, via the zlib combine rule
// (internal/checksum.CombineAdler32), instead of re-scanning the
// concatenated buffer sequentially.
func CombinedAdler32(bands []Band) uint32 {
	acc := uint32(1) // the Adler-32 identity, so an empty leading band is a no-op
	for _, b := range bands {
		partial := checksum.Adler32(b.Filtered)
		acc = checksum.CombineAdler32(acc, partial, len(b.Filtered))
	}
	return acc
}
