// Package sdt provides swinging door trending compression for time-series
// data, together with a compact binary archive format for the compressed
// output.
//
// Swinging door trending is the lossy reduction technique industrial
// historians use to shrink high-frequency sensor data: a single greedy pass
// keeps a subsequence of the input such that every discarded sample lies
// within a configured deviation of the line connecting its surrounding
// archived samples.
//
// # Core Features
//
//   - Greedy single-pass O(n) compression with a hard reconstruction bound
//   - Max-gap heartbeat and min-gap undersampling floor
//   - Sequential (streaming, O(1) space) and indexed (slice) traversals
//     producing identical output
//   - Lazy iter.Seq production, one archived sample per pull
//   - Archive blob format with xxHash64 series IDs and optional
//     Zstd/S2/LZ4 payload compression
//
// # Basic Usage
//
// Compressing a slice of samples:
//
//	import "github.com/arloliu/sdt"
//
//	archived, err := sdt.Compress(points, 0.5, trend.WithMaxGap(60))
//
// Persisting compressed series:
//
//	enc, _ := sdt.NewEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithTrendCompression(c),
//	)
//	enc.StartSeries("boiler.temp")
//	enc.AddPoints(raw)
//	enc.EndSeries()
//	data, _ := enc.Finish()
//
//	b, _ := sdt.Decode(data)
//	for _, p := range b.AllByName("boiler.temp") {
//	    ...
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the trend and
// blob packages, simplifying the most common use cases. For fine-grained
// control (explicit iterators, encoder staging) use those packages directly.
package sdt

import (
	"iter"

	"github.com/arloliu/sdt/blob"
	"github.com/arloliu/sdt/internal/hash"
	"github.com/arloliu/sdt/trend"
)

// Compress runs swinging door compression over points with the given
// deviation and options, returning the archived samples as a new slice.
//
// Points must be in non-decreasing X order. For n input points the result
// holds between 1 and n points; empty input yields an empty result.
func Compress(points []trend.Point, deviation float64, opts ...trend.Option) ([]trend.Point, error) {
	c, err := trend.New(deviation, opts...)
	if err != nil {
		return nil, err
	}

	return c.CompressSlice(points), nil
}

// CompressSeq runs swinging door compression over a streaming source,
// returning a lazy sequence of archived samples. The source is consumed as
// the result is ranged over.
func CompressSeq(src iter.Seq[trend.Point], deviation float64, opts ...trend.Option) (iter.Seq[trend.Point], error) {
	c, err := trend.New(deviation, opts...)
	if err != nil {
		return nil, err
	}

	return c.CompressSeq(src), nil
}

// SeriesID computes the xxHash64 ID the blob format stores for a series
// name. Useful for pre-computing IDs on the query path.
func SeriesID(name string) uint64 {
	return hash.SeriesID(name)
}

// NewEncoder creates an archive blob encoder. See blob.NewEncoder for the
// available options.
func NewEncoder(opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(opts...)
}

// Decode parses an archive blob produced by an Encoder.
func Decode(data []byte) (*blob.Blob, error) {
	return blob.Decode(data)
}
