package section

import (
	"encoding/binary"

	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/format"
)

const (
	// MagicNumber identifies an archive blob ("SDTB", little-endian).
	MagicNumber uint32 = 0x42544453

	// Version is the current format version.
	Version uint8 = 1

	// HeaderSize is the byte size of the fixed header at offset 0.
	HeaderSize = 16

	// MaxSeriesCount is the maximum number of series in one blob.
	MaxSeriesCount = 65536
)

// Header is the fixed-size section at the start of every archive blob.
//
// Layout (16 bytes, little-endian):
//
//	offset 0-3   magic number
//	offset 4     format version
//	offset 5     compression type
//	offset 6-7   reserved, written as zero
//	offset 8-11  series count
//	offset 12-15 payload offset (header + index size)
type Header struct {
	Magic         uint32
	Ver           uint8
	Compression   format.CompressionType
	SeriesCount   uint32
	PayloadOffset uint32
}

// NewHeader creates a header for the given compression type. SeriesCount and
// PayloadOffset are filled in when the encoder finishes.
func NewHeader(compression format.CompressionType) *Header {
	return &Header{
		Magic:       MagicNumber,
		Ver:         Version,
		Compression: compression,
	}
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint32(b[0:4], h.Magic)
	b[4] = h.Ver
	b[5] = uint8(h.Compression)
	binary.LittleEndian.PutUint32(b[8:12], h.SeriesCount)
	binary.LittleEndian.PutUint32(b[12:16], h.PayloadOffset)

	return b
}

// Parse deserializes and validates the header from data, which must be
// exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Magic = binary.LittleEndian.Uint32(data[0:4])
	if h.Magic != MagicNumber {
		return errs.ErrInvalidMagicNumber
	}

	h.Ver = data[4]
	if h.Ver != Version {
		return errs.ErrInvalidVersion
	}

	h.Compression = format.CompressionType(data[5])
	if !h.Compression.Valid() {
		return errs.ErrInvalidCompression
	}

	h.SeriesCount = binary.LittleEndian.Uint32(data[8:12])
	if h.SeriesCount > MaxSeriesCount {
		return errs.ErrInvalidSeriesCount
	}

	h.PayloadOffset = binary.LittleEndian.Uint32(data[12:16])

	return nil
}
