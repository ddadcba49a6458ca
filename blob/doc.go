// Package blob implements the binary archive format for swinging-door
// compressed series.
//
// A blob holds one or more series, each identified by the xxHash64 of its
// name. The layout is a fixed header, a fixed-size index (one entry per
// series), and a columnar payload: per series all X values then all Y
// values as little-endian float64. The payload as a whole may be byte
// compressed with any codec from the compress package.
//
// # Encoding
//
//	enc, _ := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	enc.StartSeries("pump.pressure")
//	for _, p := range points {
//	    enc.AddPoint(p.X, p.Y)
//	}
//	enc.EndSeries()
//	data, _ := enc.Finish()
//
// With WithTrendCompression the encoder runs every series through a
// trend.Compressor before it is written, so raw samples go in and only
// archived samples reach the payload.
//
// # Decoding
//
//	b, _ := blob.Decode(data)
//	for i, p := range b.AllByName("pump.pressure") {
//	    fmt.Println(i, p.X, p.Y)
//	}
//
// A decoded Blob is immutable and safe for concurrent readers. An Encoder
// is single-goroutine.
package blob
