// Package window provides grain envelope windows for granular synthesis.
//
// Every window is exactly zero at the first and last sample of a grain's
// life and reaches its maximum at the midpoint, which is what keeps grain
// onsets and offsets click-free.
package window

import "math"

// Shape selects the envelope window applied over a grain's lifetime.
type Shape int

const (
	// Hann is a raised-cosine window (the default).
	Hann Shape = iota
	// Triangular is a linear fade in/out.
	Triangular
	// Tukey is a tapered-cosine window: cosine edges with a flat top.
	Tukey
)

// tukeyAlpha is the fraction of the window spent inside the cosine tapers.
const tukeyAlpha = 0.5

// Gain returns the envelope gain for a grain that is age samples into a
// lifetime of dur samples. age is expected in [0, dur).
func Gain(shape Shape, age, dur int) float64 {
	switch shape {
	case Triangular:
		return TriangularGain(age, dur)
	case Tukey:
		return TukeyGain(age, dur)
	default:
		return HannGain(age, dur)
	}
}

// HannGain returns the raised-cosine gain 0.5*(1-cos(2πx)) where x spans
// the grain's life. Zero at both endpoints, 1.0 at the midpoint.
func HannGain(age, dur int) float64 {
	if dur <= 1 {
		return 1
	}
	phase := 2 * math.Pi * float64(age) / float64(dur-1)
	return 0.5 * (1 - math.Cos(phase))
}

// TriangularGain rises linearly to 1.0 at the midpoint and falls back to zero.
func TriangularGain(age, dur int) float64 {
	if dur <= 1 {
		return 1
	}
	x := float64(age) / float64(dur-1)
	return 1 - math.Abs(2*x-1)
}

// TukeyGain has cosine tapers over the first and last quarter of the grain
// and a flat unity section in between.
func TukeyGain(age, dur int) float64 {
	if dur <= 1 {
		return 1
	}
	x := float64(age) / float64(dur-1)
	edge := tukeyAlpha / 2
	switch {
	case x < edge:
		return 0.5 * (1 + math.Cos(math.Pi*(x/edge-1)))
	case x > 1-edge:
		return 0.5 * (1 + math.Cos(math.Pi*((x-1)/edge+1)))
	default:
		return 1
	}
}
