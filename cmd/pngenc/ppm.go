package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cosnicolaou/pngenc"
)

// readPPM decodes a binary PPM (P6) stream into a Raster. image/* decoding
// is explicitly out of scope for the encoder; PPM's P6 layout is already
// raw, row-major, 8-bit RGB triplets, so no decoder library is needed, only
// the header.
func readPPM(r io.Reader) (pngenc.Raster, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return pngenc.Raster{}, fmt.Errorf("pngenc: reading PPM magic: %w", err)
	}
	if magic != "P6" {
		return pngenc.Raster{}, fmt.Errorf("pngenc: unsupported PPM magic %q, want P6", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return pngenc.Raster{}, fmt.Errorf("pngenc: reading PPM width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return pngenc.Raster{}, fmt.Errorf("pngenc: reading PPM height: %w", err)
	}
	maxval, err := readIntToken(br)
	if err != nil {
		return pngenc.Raster{}, fmt.Errorf("pngenc: reading PPM maxval: %w", err)
	}
	if maxval != 255 {
		return pngenc.Raster{}, fmt.Errorf("pngenc: unsupported PPM maxval %d, want 255", maxval)
	}

	pix := make([]byte, 3*width*height)
	if _, err := io.ReadFull(br, pix); err != nil {
		return pngenc.Raster{}, fmt.Errorf("pngenc: reading PPM pixel data: %w", err)
	}
	return pngenc.Raster{Width: width, Height: height, Pix: pix}, nil
}

// readToken reads one whitespace-delimited token, skipping '#' comment
// lines, per the PPM header grammar.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '#' {
			if err := skipLine(br); err != nil {
				return "", err
			}
			continue
		}
		if isSpace(b) {
			if len(tok) > 0 {
				return string(tok), nil
			}
			continue
		}
		tok = append(tok, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func skipLine(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
