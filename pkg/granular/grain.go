package granular

import (
	"math"

	"github.com/mgranger/granule/pkg/dsp/pan"
)

// Grain is a single sonic event: a short enveloped excerpt of the source
// buffer. Pitch, Pan, Amplitude, DurationSamples, and the starting
// SourcePos are fixed at creation; only AgeSamples and SourcePos advance
// afterward, and Alive flips to false exactly once.
type Grain struct {
	Alive bool
	// ID identifies the grain for external inspection and visualization.
	// It has no effect on the audio.
	ID uint64

	Pitch           float64 // target pitch, MIDI note number
	Pan             float64 // stereo position in [-1, 1]
	Amplitude       float64 // peak gain in [0, 1], shaped by the window
	DurationSamples int
	AgeSamples      int
	SourcePos       float64 // fractional read cursor into the source

	// Cached per-sample values derived from the fixed fields at creation.
	rate       float64
	panL, panR float32
}

// prepare caches the playback rate and pan gains so the per-sample render
// step does no trigonometry or exponentiation.
func (g *Grain) prepare(rootPitch float64) {
	g.rate = math.Pow(2, (g.Pitch-rootPitch)/12)
	g.panL, g.panR = pan.MonoToStereo(float32(g.Pan), pan.ConstantPower)
}

// Remaining returns the grain's remaining lifetime in samples.
func (g *Grain) Remaining() int {
	return g.DurationSamples - g.AgeSamples
}
