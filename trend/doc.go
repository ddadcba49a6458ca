// Package trend implements the swinging door trending algorithm, the lossy
// compression technique industrial historians use to reduce high-frequency
// process data while bounding the reconstruction error.
//
// The algorithm performs a greedy single pass over samples ordered by
// abscissa. It keeps a slope envelope (the "door") anchored at the last
// archived sample; every accepted candidate narrows the envelope, and the
// first candidate that falls outside it triggers archiving. Every discarded
// sample is guaranteed to lie within the configured deviation of the line
// connecting the archived samples surrounding it.
//
// # Basic Usage
//
//	c, err := trend.New(0.5, trend.WithMaxGap(60))
//	if err != nil {
//	    return err
//	}
//	for p := range c.Compress(points) {
//	    archive(p)
//	}
//
// # Traversal Strategies
//
// Two drivers share the same decision logic and produce identical output:
//
//   - Compress / Iterate operate on a []Point with integer cursors and no
//     sample buffering. Use this when the input is already materialized.
//   - CompressSeq / IterateSeq operate on any iter.Seq[Point] in a single
//     forward pass with O(1) auxiliary space. Use this for streaming input
//     or sources of unknown length.
//
// # Parameters
//
//   - deviation: absolute half-width of the tolerance band on Y. Required,
//     must be >= 0.
//   - max gap: once a candidate's X distance from the last archived sample
//     reaches this value the candidate is archived unconditionally,
//     providing a heartbeat in otherwise flat data. Optional.
//   - min gap: after archiving, candidates whose X lies within this
//     distance of the previous snapshot are discarded outright, an
//     undersampling floor against high-frequency noise. Optional.
//
// A Compressor is immutable and safe for concurrent use. Iterators own
// mutable traversal state and are not; run one goroutine per iterator.
//
// The engine assumes samples arrive in non-decreasing X order and does not
// validate it; violating the order yields meaningless (but memory-safe)
// output, never a crash.
package trend
