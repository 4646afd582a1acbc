package granular

import (
	"github.com/mgranger/granule/pkg/dsp/window"
)

// renderStep renders one output frame of a live grain and advances it:
// windowed gain, interpolated source read, equal-power pan, then age and
// cursor advance. The grain retires itself when its lifetime is exhausted
// or, for non-looping sources, when its cursor runs off the end.
func renderStep(g *Grain, src *Source, shape window.Shape, cubic bool) (left, right float32) {
	env := window.Gain(shape, g.AgeSamples, g.DurationSamples)
	sample := src.at(g.SourcePos, cubic) * float32(env*g.Amplitude)

	left = sample * g.panL
	right = sample * g.panR

	g.SourcePos += g.rate
	g.AgeSamples++

	if g.AgeSamples >= g.DurationSamples {
		g.Alive = false
		return left, right
	}
	if src != nil && src.Len() > 0 && g.SourcePos >= float64(src.Len()) {
		if src.loop {
			g.SourcePos = src.wrap(g.SourcePos)
		} else {
			// Truncate: the window never gets to finish, but the read
			// would only produce silence from here on.
			g.Alive = false
		}
	}
	return left, right
}
