package trend

import (
	"iter"
	"math"
	"time"

	"github.com/arloliu/sdt/errs"
	"github.com/arloliu/sdt/internal/options"
)

// Compressor holds validated swinging door parameters. It is immutable after
// New returns and safe to share across goroutines; every traversal creates
// its own iterator state.
type Compressor struct {
	deviation float64
	maxGap    float64
	minGap    float64
	hasMinGap bool
}

// Option configures a Compressor during New.
type Option = options.Option[*Compressor]

// New creates a Compressor with the given absolute deviation and options.
//
// Parameters:
//   - deviation: half-width of the tolerance band applied to Y, in the
//     caller's Y units. Must be >= 0.
//   - opts: optional gap configuration (see WithMaxGap, WithMinGap and the
//     duration variants).
//
// Returns an error for a negative or NaN deviation, or from the first
// failing option. Configuration errors never surface later during traversal.
//
// If both gaps are configured the caller is responsible for keeping
// minGap <= maxGap; the combination is not validated.
func New(deviation float64, opts ...Option) (*Compressor, error) {
	if deviation < 0 || math.IsNaN(deviation) {
		return nil, errs.ErrNegativeDeviation
	}

	c := &Compressor{
		deviation: deviation,
		maxGap:    math.Inf(1),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithMaxGap forces archiving whenever a candidate's X distance from the
// last archived sample reaches gap. The gap must be positive; it uses the
// same units as Point.X.
func WithMaxGap(gap float64) Option {
	return options.New(func(c *Compressor) error {
		if gap <= 0 || math.IsNaN(gap) {
			return errs.ErrInvalidMaxGap
		}
		c.maxGap = gap

		return nil
	})
}

// WithMaxGapDuration is WithMaxGap for time-valued abscissas: gap is
// converted once at construction by dividing through unit, e.g.
// WithMaxGapDuration(5*time.Second, time.Millisecond) yields a max gap of
// 5000 for data whose X is in milliseconds.
func WithMaxGapDuration(gap, unit time.Duration) Option {
	return options.New(func(c *Compressor) error {
		if unit <= 0 {
			return errs.ErrInvalidGapUnit
		}

		return WithMaxGap(float64(gap) / float64(unit))(c)
	})
}

// WithMinGap suppresses archiving of candidates whose X lies within gap of
// the previous snapshot: they are skipped outright, never evaluated against
// the door. The gap must be positive; it uses the same units as Point.X.
func WithMinGap(gap float64) Option {
	return options.New(func(c *Compressor) error {
		if gap <= 0 || math.IsNaN(gap) {
			return errs.ErrInvalidMinGap
		}
		c.minGap = gap
		c.hasMinGap = true

		return nil
	})
}

// WithMinGapDuration is WithMinGap with the duration/unit conversion of
// WithMaxGapDuration.
func WithMinGapDuration(gap, unit time.Duration) Option {
	return options.New(func(c *Compressor) error {
		if unit <= 0 {
			return errs.ErrInvalidGapUnit
		}

		return WithMinGap(float64(gap) / float64(unit))(c)
	})
}

// Deviation returns the configured deviation.
func (c *Compressor) Deviation() float64 {
	return c.deviation
}

// MaxGap returns the configured max gap, +Inf when unbounded.
func (c *Compressor) MaxGap() float64 {
	return c.maxGap
}

// MinGap returns the configured min gap and whether one is set.
func (c *Compressor) MinGap() (float64, bool) {
	return c.minGap, c.hasMinGap
}

// Iterate creates an indexed traversal over points. The slice is re-read by
// index and must not be mutated while the iterator is in use.
func (c *Compressor) Iterate(points []Point) *SliceIterator {
	return &SliceIterator{door: newDoor(c), src: points}
}

// IterateSeq creates a sequential traversal over src, consuming it in a
// single forward pass with O(1) auxiliary space.
//
// The returned iterator must be closed to release the underlying pull
// iterator; Compress-style range usage does this automatically.
func (c *Compressor) IterateSeq(src iter.Seq[Point]) *SeqIterator {
	next, stop := iter.Pull(src)

	return &SeqIterator{door: newDoor(c), next: next, stop: stop}
}

// Compress returns a lazy sequence of archived samples produced by the
// indexed strategy over points. Each re-range over the result starts a fresh
// traversal.
//
// Example:
//
//	for p := range c.Compress(points) {
//	    fmt.Printf("x=%v y=%v\n", p.X, p.Y)
//	}
func (c *Compressor) Compress(points []Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := c.Iterate(points)
		for it.Next() {
			if !yield(it.Point()) {
				return
			}
		}
	}
}

// CompressSeq returns a lazy sequence of archived samples produced by the
// sequential strategy over src. The source is consumed as the result is
// ranged over; ranging a second time restarts src from scratch, which is
// only meaningful for replayable sequences.
func (c *Compressor) CompressSeq(src iter.Seq[Point]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		it := c.IterateSeq(src)
		defer it.Close()

		for it.Next() {
			if !yield(it.Point()) {
				return
			}
		}
	}
}

// CompressSlice materializes Compress into a new slice. For n input points
// the result holds between 1 and n points (0 for empty input).
func (c *Compressor) CompressSlice(points []Point) []Point {
	out := make([]Point, 0, min(len(points), 16))
	for p := range c.Compress(points) {
		out = append(out, p)
	}

	return out
}
