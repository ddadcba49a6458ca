package blob

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/sdt/compress"
	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/format"
	"github.com/arloliu/sdt/internal/hash"
	"github.com/arloliu/sdt/section"
	"github.com/arloliu/sdt/trend"
)

// Blob is a decoded archive blob. It keeps the decompressed columnar
// payload and an index from series ID to location; samples are materialized
// lazily as they are iterated.
//
// Immutable after Decode and safe for concurrent readers.
type Blob struct {
	header  section.Header
	index   map[uint64]section.IndexEntry
	ids     []uint64
	payload []byte
}

// Decode parses and validates an archive blob produced by Encoder.Finish.
//
// The whole payload is decompressed eagerly; every index entry is bounds
// checked against it, so subsequent accessors never fail.
func Decode(data []byte) (*Blob, error) {
	if len(data) < section.HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	b := &Blob{}
	if err := b.header.Parse(data[:section.HeaderSize]); err != nil {
		return nil, err
	}

	count := int(b.header.SeriesCount)
	indexEnd := section.HeaderSize + count*section.IndexEntrySize
	if int(b.header.PayloadOffset) != indexEnd || len(data) < indexEnd {
		return nil, errs.ErrInvalidIndexSize
	}

	codec, err := compress.GetCodec(b.header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[indexEnd:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	b.payload = payload

	b.index = make(map[uint64]section.IndexEntry, count)
	b.ids = make([]uint64, 0, count)
	for i := range count {
		offset := section.HeaderSize + i*section.IndexEntrySize
		entry, err := section.ParseIndexEntry(data[offset : offset+section.IndexEntrySize])
		if err != nil {
			return nil, err
		}
		if int(entry.Offset)+entry.PayloadSize() > len(payload) {
			return nil, fmt.Errorf("%w: series %d", errs.ErrOffsetOutOfRange, entry.SeriesID)
		}
		if _, ok := b.index[entry.SeriesID]; ok {
			return nil, fmt.Errorf("%w: %d", errs.ErrDuplicateSeriesID, entry.SeriesID)
		}

		b.index[entry.SeriesID] = entry
		b.ids = append(b.ids, entry.SeriesID)
	}

	return b, nil
}

// Compression returns the byte compression the blob was encoded with.
func (b *Blob) Compression() format.CompressionType {
	return b.header.Compression
}

// SeriesCount returns the number of series in the blob.
func (b *Blob) SeriesCount() int {
	return len(b.ids)
}

// SeriesIDs returns all series IDs in encoding order.
func (b *Blob) SeriesIDs() []uint64 {
	ids := make([]uint64, len(b.ids))
	copy(ids, b.ids)

	return ids
}

// HasSeries reports whether the blob contains the given series ID.
func (b *Blob) HasSeries(seriesID uint64) bool {
	_, ok := b.index[seriesID]
	return ok
}

// HasSeriesName reports whether the blob contains a series whose name
// hashes to a stored ID.
func (b *Blob) HasSeriesName(name string) bool {
	return b.HasSeries(hash.SeriesID(name))
}

// Len returns the number of points stored for the given series ID, 0 when
// the series does not exist.
func (b *Blob) Len(seriesID uint64) int {
	return int(b.index[seriesID].Count)
}

// All returns an iterator over (index, point) for the given series ID. The
// sequence is empty when the series does not exist.
//
// Example:
//
//	for i, p := range b.All(seriesID) {
//	    fmt.Printf("[%d] x=%v y=%v\n", i, p.X, p.Y)
//	}
func (b *Blob) All(seriesID uint64) iter.Seq2[int, trend.Point] {
	entry, ok := b.index[seriesID]
	if !ok {
		return func(yield func(int, trend.Point) bool) {}
	}

	return func(yield func(int, trend.Point) bool) {
		count := int(entry.Count)
		xs := b.payload[entry.Offset:]
		ys := xs[count*8:]
		for i := range count {
			p := trend.Point{
				X: math.Float64frombits(binary.LittleEndian.Uint64(xs[i*8:])),
				Y: math.Float64frombits(binary.LittleEndian.Uint64(ys[i*8:])),
			}
			if !yield(i, p) {
				return
			}
		}
	}
}

// AllByName is All keyed by series name.
func (b *Blob) AllByName(name string) iter.Seq2[int, trend.Point] {
	return b.All(hash.SeriesID(name))
}

// Points materializes the series into a new slice, nil when the series does
// not exist.
func (b *Blob) Points(seriesID uint64) []trend.Point {
	entry, ok := b.index[seriesID]
	if !ok {
		return nil
	}

	points := make([]trend.Point, 0, entry.Count)
	for _, p := range b.All(seriesID) {
		points = append(points, p)
	}

	return points
}

// PointsByName is Points keyed by series name.
func (b *Blob) PointsByName(name string) []trend.Point {
	return b.Points(hash.SeriesID(name))
}
