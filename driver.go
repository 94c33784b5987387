// Package pngenc encodes an in-memory 8-bit RGB raster as a valid PNG
// file from scratch: scanline filtering, a hand-rolled LZ77 matcher,
// fixed-Huffman deflate framing, Adler-32/CRC-32 checksums, and
// (for V4MC) row-band parallelism across a worker pool. It bypasses any
// general-purpose deflate library.
package pngenc

import (
	"bytes"
	"io"
	"runtime"

	"github.com/cosnicolaou/pngenc/internal/bitio"
	"github.com/cosnicolaou/pngenc/internal/checksum"
	"github.com/cosnicolaou/pngenc/internal/huffman"
	"github.com/cosnicolaou/pngenc/internal/imgfilter"
	"github.com/cosnicolaou/pngenc/internal/lzenc"
	"github.com/cosnicolaou/pngenc/internal/pngchunk"
	"github.com/cosnicolaou/pngenc/internal/workband"
)

// Encode writes r to w as a complete PNG file according to opts.Variant,
// returning the total number of bytes written. It is the single entry
// point replacing the three historical homebrew_png2/3/4/4_mc functions.
func Encode(w io.Writer, r Raster, opts Options) (total int64, err error) {
	defer recoverInvariant(&err)

	if err := r.Validate(); err != nil {
		return 0, err
	}

	n, err := pngchunk.WriteSignature(w)
	total += n
	if err != nil {
		return total, outputWriteFailure(err)
	}

	n, err = pngchunk.WriteIHDR(w, r.Width, r.Height)
	total += n
	if err != nil {
		return total, outputWriteFailure(err)
	}

	deflateBlock, adler32, err := encodeDeflateBlock(r, opts)
	if err != nil {
		return total, err
	}

	n, err = pngchunk.WriteIDAT(w, deflateBlock, adler32)
	total += n
	if err != nil {
		return total, outputWriteFailure(err)
	}

	n, err = pngchunk.WriteIEND(w)
	total += n
	if err != nil {
		return total, outputWriteFailure(err)
	}
	return total, nil
}

func encodeDeflateBlock(r Raster, opts Options) ([]byte, uint32, error) {
	switch opts.Variant {
	case V2:
		return encodeV2(r, opts)
	case V3:
		return encodeV3(r, opts)
	case V4:
		return encodeV4(r, opts)
	case V4MC:
		return encodeV4MC(r, opts)
	default:
		return nil, 0, invalidInputf("unknown variant %d", opts.Variant)
	}
}

func blockHeader(w *bitio.Writer) {
	w.WriteLSB(1, 1) // BFINAL=1
	w.WriteLSB(1, 2) // BTYPE=01, fixed Huffman
}

func encodeV2(r Raster, opts Options) ([]byte, uint32, error) {
	filtered := make([]byte, imgfilter.Stride(r.Width)*r.Height)
	imgfilter.FilterV2(filtered, r.Pix, r.Width, r.Height)

	w := bitio.NewWriter(len(filtered))
	blockHeader(w)
	stride := imgfilter.Stride(r.Width)
	for j := 0; j < r.Height; j++ {
		huffman.WriteLiteral(w, filtered[j*stride]) // filter-type byte
		row := filtered[j*stride+1 : (j+1)*stride]
		huffman.EmitTokens(w, lzenc.EncodeV2Row(row, r.Width))
		reportProgress(opts, j, r.Height)
	}
	huffman.WriteEndOfBlock(w)
	w.Flush()
	return w.Bytes(), checksum.Adler32(filtered), nil
}

func encodeV3(r Raster, opts Options) ([]byte, uint32, error) {
	filtered := make([]byte, imgfilter.Stride(r.Width)*r.Height)
	imgfilter.FilterV3(filtered, r.Pix, r.Width, r.Height)

	w := bitio.NewWriter(len(filtered))
	blockHeader(w)
	rowBytes := 3 * r.Width
	var prevRow []byte
	for j := 0; j < r.Height; j++ {
		huffman.WriteLiteral(w, imgfilter.None) // filter-type byte
		curRow := r.Pix[j*rowBytes : (j+1)*rowBytes]
		huffman.EmitTokens(w, lzenc.EncodeV3(curRow, prevRow, r.Width))
		prevRow = curRow
		reportProgress(opts, j, r.Height)
	}
	huffman.WriteEndOfBlock(w)
	w.Flush()
	return w.Bytes(), checksum.Adler32(filtered), nil
}

func encodeV4(r Raster, opts Options) ([]byte, uint32, error) {
	filtered := make([]byte, imgfilter.Stride(r.Width)*r.Height)
	imgfilter.FilterV4(filtered, r.Pix, r.Width, r.Height)

	w := bitio.NewWriter(len(filtered))
	blockHeader(w)
	huffman.EmitTokens(w, lzenc.EncodeV4(filtered))
	huffman.WriteEndOfBlock(w)
	w.Flush()
	reportProgress(opts, 0, 1)
	return w.Bytes(), checksum.Adler32(filtered), nil
}

func encodeV4MC(r Raster, opts Options) ([]byte, uint32, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	bands := opts.Bands
	if bands <= 0 {
		bands = workers
	}
	// If bands > r.Height, workband.Bounds gives some bands start==end
	// (empty), which Plan and the fragment loop below handle as a
	// zero-length contribution — still a valid file.
	results := workband.Plan(r.Pix, r.Width, r.Height, bands, workers, func(e workband.Event) {
		reportProgress(opts, e.Band, e.Total)
	})

	w := bitio.NewWriter(0)
	blockHeader(w)

	for i, band := range results {
		fragment := bitio.NewWriter(len(band.Filtered))
		huffman.EmitTokens(fragment, band.Tokens)
		if i == len(results)-1 {
			huffman.WriteEndOfBlock(fragment)
		}
		buf, bitLen := fragment.Snapshot()
		w.Append(buf, 0, bitLen)
	}
	w.Flush()

	return w.Bytes(), workband.CombinedAdler32(results), nil
}

func reportProgress(opts Options, band, total int) {
	if opts.Progress != nil {
		opts.Progress(Event{Band: band, Total: total})
	}
}

// EncodeBytes is a convenience wrapper returning the encoded PNG as a
// byte slice instead of writing to an io.Writer.
func EncodeBytes(r Raster, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Encode(&buf, r, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
