// Package errs defines the sentinel errors shared across sdt packages.
//
// All errors are plain stdlib sentinels so callers can match them with
// errors.Is after any amount of fmt.Errorf("%w") wrapping.
package errs

import "errors"

// Compression parameter errors, returned by trend.New at construction time.
var (
	// ErrNegativeDeviation indicates the deviation is negative or NaN.
	ErrNegativeDeviation = errors.New("deviation must be non-negative")
	// ErrInvalidMaxGap indicates the max gap is zero, negative or NaN.
	ErrInvalidMaxGap = errors.New("max gap must be positive")
	// ErrInvalidMinGap indicates the min gap is zero, negative or NaN.
	ErrInvalidMinGap = errors.New("min gap must be positive")
	// ErrInvalidGapUnit indicates a non-positive duration unit for a gap option.
	ErrInvalidGapUnit = errors.New("gap unit must be positive")
)

// Traversal contract errors.
var (
	// ErrIteratorClosed indicates a pull on an iterator after Close.
	ErrIteratorClosed = errors.New("iterator is closed")
)

// Blob encoder state errors.
var (
	ErrSeriesAlreadyStarted = errors.New("series already started, call EndSeries first")
	ErrNoSeriesStarted      = errors.New("no series started, call StartSeries first")
	ErrNoPointsAdded        = errors.New("no points added to series")
	ErrNoSeriesAdded        = errors.New("no series added to blob")
	ErrSeriesCountExceeded  = errors.New("series count exceeds maximum")
	ErrDuplicateSeriesID    = errors.New("duplicate series ID")
	ErrInvalidSeriesID      = errors.New("series ID must be non-zero")
)

// Blob decoder errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrInvalidVersion     = errors.New("unsupported format version")
	ErrInvalidSeriesCount = errors.New("invalid series count")
	ErrInvalidIndexSize   = errors.New("index section truncated")
	ErrOffsetOutOfRange   = errors.New("payload offset out of range")
	ErrInvalidIndexEntry  = errors.New("invalid index entry")
)
