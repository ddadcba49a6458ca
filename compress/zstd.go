package compress

// ZstdCodec provides Zstandard compression, the highest-ratio codec in the
// registry. Best suited for cold storage and archival where decompression
// is infrequent and space dominates the cost model.
//
// The backend is selected at build time: pure Go (klauspost/compress) by
// default, or valyala/gozstd when building with the "gozstd" tag. Both
// produce interoperable zstd frames.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
