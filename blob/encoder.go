package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/sdt/compress"
	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/format"
	"github.com/arloliu/sdt/internal/hash"
	"github.com/arloliu/sdt/internal/options"
	"github.com/arloliu/sdt/section"
	"github.com/arloliu/sdt/trend"
)

// initialIndexCapacity avoids reallocations for typical small blobs.
const initialIndexCapacity = 16

// Encoder builds an archive blob series by series.
//
// Usage follows a strict staging protocol: StartSeries (or StartSeriesID),
// one or more AddPoint/AddPoints calls, EndSeries, repeated per series, then
// a single Finish. Protocol violations surface as sentinel errors from the
// offending call, never from Finish.
//
// Not safe for concurrent use.
type Encoder struct {
	compression format.CompressionType
	codec       compress.Codec
	trendComp   *trend.Compressor

	entries []section.IndexEntry
	seen    map[uint64]struct{}
	payload []byte

	curID      uint64
	curPoints  []trend.Point
	inSeries   bool
}

// EncoderOption configures an Encoder during NewEncoder.
type EncoderOption = options.Option[*Encoder]

// NewEncoder creates an archive blob encoder.
//
// Without options the payload is stored uncompressed and series are written
// exactly as added. See WithCompression and WithTrendCompression.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		compression: format.CompressionNone,
		entries:     make([]section.IndexEntry, 0, initialIndexCapacity),
		seen:        make(map[uint64]struct{}),
	}

	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(enc.compression)
	if err != nil {
		return nil, err
	}
	enc.codec = codec

	return enc, nil
}

// WithCompression selects the byte compression applied to the whole payload.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(enc *Encoder) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		enc.compression = compression

		return nil
	})
}

// WithTrendCompression runs every series through c before it is written, so
// the blob stores only the archived samples. The points of a series must be
// added in non-decreasing X order for the result to be meaningful.
func WithTrendCompression(c *trend.Compressor) EncoderOption {
	return options.NoError(func(enc *Encoder) {
		enc.trendComp = c
	})
}

// StartSeries begins a new series identified by the xxHash64 of name.
func (e *Encoder) StartSeries(name string) error {
	return e.StartSeriesID(hash.SeriesID(name))
}

// StartSeriesID begins a new series with an explicit 64-bit ID.
//
// Returns ErrSeriesAlreadyStarted if the previous series was not ended,
// ErrInvalidSeriesID for a zero ID, ErrDuplicateSeriesID if the ID was
// already added, and ErrSeriesCountExceeded past section.MaxSeriesCount.
func (e *Encoder) StartSeriesID(seriesID uint64) error {
	if e.inSeries {
		return errs.ErrSeriesAlreadyStarted
	}
	if seriesID == 0 {
		return errs.ErrInvalidSeriesID
	}
	if _, ok := e.seen[seriesID]; ok {
		return fmt.Errorf("%w: %d", errs.ErrDuplicateSeriesID, seriesID)
	}
	if len(e.entries) >= section.MaxSeriesCount {
		return errs.ErrSeriesCountExceeded
	}

	e.curID = seriesID
	e.curPoints = e.curPoints[:0]
	e.inSeries = true

	return nil
}

// AddPoint appends one sample to the current series.
func (e *Encoder) AddPoint(x, y float64) error {
	if !e.inSeries {
		return errs.ErrNoSeriesStarted
	}

	e.curPoints = append(e.curPoints, trend.Point{X: x, Y: y})

	return nil
}

// AddPoints appends samples to the current series.
func (e *Encoder) AddPoints(points []trend.Point) error {
	if !e.inSeries {
		return errs.ErrNoSeriesStarted
	}

	e.curPoints = append(e.curPoints, points...)

	return nil
}

// EndSeries completes the current series, applying trend compression when
// configured, and stages its columnar payload.
//
// Returns ErrNoSeriesStarted without a matching StartSeries and
// ErrNoPointsAdded for an empty series.
func (e *Encoder) EndSeries() error {
	if !e.inSeries {
		return errs.ErrNoSeriesStarted
	}
	if len(e.curPoints) == 0 {
		return errs.ErrNoPointsAdded
	}

	points := e.curPoints
	if e.trendComp != nil {
		points = e.trendComp.CompressSlice(points)
	}

	offset := len(e.payload)
	e.payload = appendColumnar(e.payload, points)

	e.entries = append(e.entries, section.IndexEntry{
		SeriesID: e.curID,
		Count:    uint32(len(points)),
		Offset:   uint32(offset),
	})
	e.seen[e.curID] = struct{}{}
	e.inSeries = false

	return nil
}

// Finish compresses the staged payload and assembles the final blob bytes.
//
// Returns ErrSeriesAlreadyStarted if a series is still open and
// ErrNoSeriesAdded when nothing was staged. The encoder must not be reused
// after Finish.
func (e *Encoder) Finish() ([]byte, error) {
	if e.inSeries {
		return nil, errs.ErrSeriesAlreadyStarted
	}
	if len(e.entries) == 0 {
		return nil, errs.ErrNoSeriesAdded
	}

	compressed, err := e.codec.Compress(e.payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	header := section.NewHeader(e.compression)
	header.SeriesCount = uint32(len(e.entries))
	header.PayloadOffset = uint32(section.HeaderSize + len(e.entries)*section.IndexEntrySize)

	out := make([]byte, 0, int(header.PayloadOffset)+len(compressed))
	out = append(out, header.Bytes()...)

	var entryBuf [section.IndexEntrySize]byte
	for _, entry := range e.entries {
		entry.Bytes(entryBuf[:])
		out = append(out, entryBuf[:]...)
	}

	return append(out, compressed...), nil
}

// appendColumnar appends the series block: all X values then all Y values,
// little-endian float64.
func appendColumnar(dst []byte, points []trend.Point) []byte {
	for _, p := range points {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.X))
	}
	for _, p := range points {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(p.Y))
	}

	return dst
}
