package section

import (
	"encoding/binary"

	"github.com/arloliu/sdt/errs"
)

// IndexEntrySize is the byte size of one serialized index entry.
const IndexEntrySize = 16

// IndexEntry locates one series inside the decompressed payload.
//
// Layout (16 bytes, little-endian):
//
//	offset 0-7   series ID (xxHash64 of the series name)
//	offset 8-11  point count
//	offset 12-15 byte offset into the decompressed payload
type IndexEntry struct {
	SeriesID uint64
	Count    uint32
	Offset   uint32
}

// Bytes serializes the entry into b, which must be at least IndexEntrySize
// bytes.
func (e IndexEntry) Bytes(b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], e.SeriesID)
	binary.LittleEndian.PutUint32(b[8:12], e.Count)
	binary.LittleEndian.PutUint32(b[12:16], e.Offset)
}

// ParseIndexEntry deserializes one entry from data, which must be exactly
// IndexEntrySize bytes.
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	if len(data) != IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexEntry
	}

	return IndexEntry{
		SeriesID: binary.LittleEndian.Uint64(data[0:8]),
		Count:    binary.LittleEndian.Uint32(data[8:12]),
		Offset:   binary.LittleEndian.Uint32(data[12:16]),
	}, nil
}

// PayloadSize returns the byte size of the series block this entry covers:
// Count X values followed by Count Y values, 8 bytes each.
func (e IndexEntry) PayloadSize() int {
	return int(e.Count) * 16
}
