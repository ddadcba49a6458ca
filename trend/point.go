package trend

// Point is a single (abscissa, ordinate) sample. X is typically a timestamp
// in caller-chosen units (seconds, ticks, ...) and Y the measured value.
//
// Points are plain values; the engine never mutates them.
type Point struct {
	X float64
	Y float64
}

// Gradient returns the slope of the line from p to other.
//
// When other.X equals p.X the result is +/-Inf, or NaN if the Y values are
// equal as well; the engine tolerates both without special-casing.
func (p Point) Gradient(other Point) float64 {
	return (other.Y - p.Y) / (other.X - p.X)
}

// GradientOffset returns the slope of the line from p to other with yOffset
// added to other's ordinate. The door envelope is built from the two offset
// gradients at +deviation and -deviation.
func (p Point) GradientOffset(other Point, yOffset float64) float64 {
	return ((other.Y + yOffset) - p.Y) / (other.X - p.X)
}
