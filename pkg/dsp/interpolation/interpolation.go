// Package interpolation provides fractional-position sample readers used
// for grain resampling.
package interpolation

// Linear performs linear interpolation between two samples.
// frac is the fractional position between y0 and y1 (0.0 to 1.0).
func Linear(y0, y1, frac float32) float32 {
	return y0 + (y1-y0)*frac
}

// Cubic performs 4-point Catmull-Rom cubic interpolation.
// frac is the fractional position between y1 and y2 (0.0 to 1.0).
func Cubic(y0, y1, y2, y3, frac float32) float32 {
	c0 := y1
	c1 := 0.5 * (y2 - y0)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c3 := 0.5 * (y3 - y0 + 3*(y1-y2))

	return ((c3*frac+c2)*frac+c1)*frac + c0
}

// Hermite performs 4-point, 3rd-order Hermite interpolation.
// frac is the fractional position between y1 and y2 (0.0 to 1.0).
func Hermite(y0, y1, y2, y3, frac float32) float32 {
	c0 := y1
	c1 := 0.5 * (y2 - y0)
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c3 := 0.5 * (y3 - y0 + 3*(y1-y2))

	return ((c3*frac+c2)*frac+c1)*frac + c0
}

// At reads buffer at a fractional position using linear interpolation.
// Positions outside the buffer fail closed and return 0.
func At(buffer []float32, pos float64) float32 {
	if pos < 0 || len(buffer) == 0 {
		return 0
	}
	idx := int(pos)
	if idx >= len(buffer) {
		return 0
	}
	frac := float32(pos - float64(idx))
	if idx == len(buffer)-1 {
		// Last sample: interpolate toward silence.
		return Linear(buffer[idx], 0, frac)
	}
	return Linear(buffer[idx], buffer[idx+1], frac)
}

// AtCubic reads buffer at a fractional position using 4-point cubic
// interpolation, falling back to linear near the buffer edges.
// Positions outside the buffer fail closed and return 0.
func AtCubic(buffer []float32, pos float64) float32 {
	if pos < 0 || len(buffer) == 0 {
		return 0
	}
	idx := int(pos)
	if idx >= len(buffer) {
		return 0
	}
	if idx < 1 || idx >= len(buffer)-2 {
		return At(buffer, pos)
	}
	frac := float32(pos - float64(idx))
	return Cubic(buffer[idx-1], buffer[idx], buffer[idx+1], buffer[idx+2], frac)
}
