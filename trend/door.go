package trend

import "math"

// decision is the outcome of classifying one candidate against the door.
type decision struct {
	// archive indicates the candidate ends the current segment.
	archive bool
	// forcedGap indicates archiving was forced by the max gap, in which
	// case the snapshot is not emitted.
	forcedGap bool
}

// door holds the compression parameters together with the slope envelope of
// the current segment. Both traversal strategies embed one door; it is the
// single source of algorithmic truth.
//
// The envelope is anchored at the last archived sample. open resets it to
// (-Inf, +Inf); narrow shrinks it with every accepted candidate, taking the
// intersection of all admissible-deviation cones seen since the anchor.
type door struct {
	deviation float64
	maxGap    float64 // +Inf when unbounded
	minGap    float64
	hasMinGap bool

	slopeMax float64
	slopeMin float64
}

func newDoor(c *Compressor) door {
	return door{
		deviation: c.deviation,
		maxGap:    c.maxGap,
		minGap:    c.minGap,
		hasMinGap: c.hasMinGap,
	}
}

// open resets the envelope for a new anchor.
func (d *door) open() {
	d.slopeMax = math.Inf(1)
	d.slopeMin = math.Inf(-1)
}

// classify decides whether incoming must be archived.
//
// The max gap check runs first: once the abscissa distance from the anchor
// reaches maxGap the candidate is archived regardless of slope. Otherwise a
// single gradient is compared against the envelope; comparing slopes instead
// of interpolated Y bounds costs one division instead of two and is exact by
// construction of the envelope.
func (d *door) classify(anchor, incoming Point) decision {
	if incoming.X-anchor.X >= d.maxGap {
		return decision{archive: true, forcedGap: true}
	}

	slope := anchor.Gradient(incoming)

	return decision{archive: slope < d.slopeMin || slope > d.slopeMax}
}

// narrow closes the door over an accepted candidate. Called only when
// classify reported archive=false, so the envelope stays non-empty.
//
// The direct comparisons (rather than math.Min/Max) leave the envelope
// untouched when a degenerate candidate produces a NaN gradient.
func (d *door) narrow(anchor, incoming Point) {
	upper := anchor.GradientOffset(incoming, d.deviation)
	lower := anchor.GradientOffset(incoming, -d.deviation)

	if upper < d.slopeMax {
		d.slopeMax = upper
	}
	if lower > d.slopeMin {
		d.slopeMin = lower
	}
}
