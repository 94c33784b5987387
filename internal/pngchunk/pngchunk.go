// Package pngchunk assembles the PNG container around one deflate block:
// signature, IHDR, a single IDAT wrapping the zlib header/deflate
// block/Adler-32 trailer, and IEND. Byte layout is grounded on
// google-wuffs/lib/uncompng's Encoder.init offsets, generalized from a
// fixed compile-time struct write to an io.Writer-oriented chunk builder
// since this encoder's IDAT payload length isn't known until the deflate
// block is produced.
package pngchunk

import (
	"encoding/binary"
	"io"

	"github.com/cosnicolaou/pngenc/internal/checksum"
)

// Signature is the fixed 8-byte PNG magic.
var Signature = [8]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// ZlibHeader is the two-byte zlib stream header spec.md §4.G fixes:
// CM/CINFO=0x78 (deflate, 32KiB window), FLG=0x5E (default compression
// level, satisfying the header's modulo-31 check).
var ZlibHeader = [2]byte{0x78, 0x5E}

// WriteSignature writes the 8-byte PNG magic.
func WriteSignature(w io.Writer) (int64, error) {
	n, err := w.Write(Signature[:])
	return int64(n), err
}

// WriteIHDR writes the fixed 13-byte IHDR payload (width, height,
// bit-depth=8, colour-type=2 (RGB), compression=0, filter=0,
// interlace=0) framed as a chunk.
func WriteIHDR(w io.Writer, width, height int) (int64, error) {
	payload := make([]byte, 13)
	binary.BigEndian.PutUint32(payload[0:4], uint32(width))
	binary.BigEndian.PutUint32(payload[4:8], uint32(height))
	payload[8] = 8 // bit depth
	payload[9] = 2 // colour type: RGB
	payload[10] = 0
	payload[11] = 0
	payload[12] = 0
	return writeChunk(w, "IHDR", payload)
}

// WriteIDAT wraps deflateBlock (a complete, already-flushed fixed-Huffman
// deflate block, BFINAL=1) with the zlib header and big-endian Adler-32
// trailer, and frames the result as one IDAT chunk.
func WriteIDAT(w io.Writer, deflateBlock []byte, adler32 uint32) (int64, error) {
	payload := make([]byte, 0, 2+len(deflateBlock)+4)
	payload = append(payload, ZlibHeader[:]...)
	payload = append(payload, deflateBlock...)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], adler32)
	payload = append(payload, trailer[:]...)
	return writeChunk(w, "IDAT", payload)
}

// iendCRC is the fixed CRC-32 of the IEND chunk's type+empty-payload,
// matching the original encoder's hardcoded constant (and
// checksum.CRC32([]byte("IEND"))).
const iendCRC = 0xAE426082

// WriteIEND writes the zero-length IEND chunk with its fixed CRC.
func WriteIEND(w io.Writer) (int64, error) {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:4], 0)
	copy(buf[4:8], "IEND")
	binary.BigEndian.PutUint32(buf[8:12], iendCRC)
	n, err := w.Write(buf[:])
	return int64(n), err
}

func writeChunk(w io.Writer, chunkType string, payload []byte) (int64, error) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(payload)))
	copy(header[4:8], chunkType)

	crcBuf := make([]byte, 4+len(payload))
	copy(crcBuf[0:4], chunkType)
	copy(crcBuf[4:], payload)
	crc := checksum.CRC32(crcBuf)

	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], crc)

	total := int64(0)
	for _, b := range [][]byte{header[:], payload, trailer[:]} {
		n, err := w.Write(b)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
