package pngchunk

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteSignature(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteSignature(&buf); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestWriteIHDRLength(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteIHDR(&buf, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	// 4 (length) + 4 (type) + 13 (payload) + 4 (crc) = 25 bytes.
	if n != 25 || int64(buf.Len()) != 25 {
		t.Fatalf("wrote %d bytes, want 25", n)
	}
	length := binary.BigEndian.Uint32(buf.Bytes()[0:4])
	if length != 13 {
		t.Fatalf("IHDR length = %d, want 13", length)
	}
	if string(buf.Bytes()[4:8]) != "IHDR" {
		t.Fatalf("chunk type = %q, want IHDR", buf.Bytes()[4:8])
	}
	width := binary.BigEndian.Uint32(buf.Bytes()[8:12])
	if width != 32 {
		t.Fatalf("width = %d, want 32", width)
	}
	if buf.Bytes()[16] != 8 || buf.Bytes()[17] != 2 {
		t.Fatalf("bit depth/colour type = %d/%d, want 8/2", buf.Bytes()[16], buf.Bytes()[17])
	}
}

func TestWriteIENDFixedCRC(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteIEND(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Fatalf("wrote %d bytes, want 12", n)
	}
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestWriteIDATLayout(t *testing.T) {
	var buf bytes.Buffer
	block := []byte{0x03, 0x00}
	_, err := WriteIDAT(&buf, block, 0x00040001)
	if err != nil {
		t.Fatal(err)
	}
	payload := buf.Bytes()[8 : buf.Len()-4]
	if payload[0] != 0x78 || payload[1] != 0x5E {
		t.Fatalf("zlib header = %02X %02X, want 78 5E", payload[0], payload[1])
	}
	adlerBytes := payload[len(payload)-4:]
	adler := binary.BigEndian.Uint32(adlerBytes)
	if adler != 0x00040001 {
		t.Fatalf("adler trailer = %08X, want 00040001", adler)
	}
}
