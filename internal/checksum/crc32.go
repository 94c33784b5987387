// Package checksum computes the two running checksums a PNG/deflate
// stream needs: CRC-32/IEEE over each chunk's type+payload, and Adler-32
// over the uncompressed filtered bytes.
package checksum

import "hash/crc32"

// ieeeTable is the 256-entry CRC-32/IEEE lookup table, built once and
// shared process-wide, matching spec.md §3's "process-wide, immutable
// after initialization" lifecycle for the CRC table. The teacher's own
// bzip2 CRC (internal/bzip2/crc.go) builds on the same stdlib table via
// crc32.Update; PNG's CRC-32 is plain IEEE bit order, so no bit-reversal
// step is needed here.
var ieeeTable = crc32.MakeTable(crc32.IEEE)

// CRC32 returns CRC(buf) = ~fold(0xFFFFFFFF, buf) over the IEEE
// polynomial 0xEDB88320, as required for PNG chunk CRCs (type+payload).
// crc32.Update's internal pre/post complement (crc = ^crc at entry and
// exit) is exactly this fold starting from the all-ones register, so a
// fresh computation just passes a zero seed.
func CRC32(buf []byte) uint32 {
	return crc32.Update(0, ieeeTable, buf)
}
