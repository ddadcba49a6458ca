// Package compress provides the byte compression codecs applied to blob
// payloads after columnar encoding.
//
// Four algorithms are supported, selected through format.CompressionType:
//
//   - None: pass-through, for incompressible or latency-critical data
//   - Zstd: best ratio, moderate speed; the default for archive blobs
//   - S2: balanced ratio and speed for hot ingestion paths
//   - LZ4: fastest decompression for query-heavy workloads
//
// All codecs are stateless values backed by pooled encoder/decoder
// instances and are safe for concurrent use.
//
// The Zstd codec has two interchangeable backends: the pure-Go
// klauspost/compress implementation (default) and the cgo valyala/gozstd
// implementation selected with the "gozstd" build tag.
package compress
