// Package oscillator provides basic waveform generation, both as a
// per-sample phase-accumulator oscillator and as rendered sample tables
// used for internal grain sources.
package oscillator

import (
	"math"
	"math/rand"
)

// Waveform identifies a generated wave shape.
type Waveform int

const (
	// Sine is a pure sine wave.
	Sine Waveform = iota
	// Saw is a rising sawtooth.
	Saw
	// Square is a 50% duty-cycle square wave.
	Square
	// Triangle is a symmetric triangle wave.
	Triangle
	// Noise is uniform white noise.
	Noise
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// Oscillator generates periodic waveforms one sample at a time.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	phase      float64
	phaseInc   float64
}

// New creates a new oscillator.
func New(sampleRate float64) *Oscillator {
	return &Oscillator{
		sampleRate: sampleRate,
		frequency:  440.0,
		phaseInc:   440.0 / sampleRate,
	}
}

// SetFrequency sets the oscillator frequency in Hz.
func (o *Oscillator) SetFrequency(freq float64) {
	o.frequency = freq
	o.phaseInc = freq / o.sampleRate
}

// Reset resets the oscillator phase to 0.
func (o *Oscillator) Reset() {
	o.phase = 0.0
}

func (o *Oscillator) updatePhase() {
	o.phase += o.phaseInc
	if o.phase >= 1.0 {
		o.phase -= math.Floor(o.phase)
	}
}

// Sine generates a sine wave sample.
func (o *Oscillator) Sine() float32 {
	sample := float32(math.Sin(2.0 * math.Pi * o.phase))
	o.updatePhase()
	return sample
}

// Saw generates a sawtooth wave sample.
func (o *Oscillator) Saw() float32 {
	sample := float32(2.0*o.phase - 1.0)
	o.updatePhase()
	return sample
}

// Square generates a square wave sample.
func (o *Oscillator) Square() float32 {
	var sample float32
	if o.phase < 0.5 {
		sample = 1.0
	} else {
		sample = -1.0
	}
	o.updatePhase()
	return sample
}

// Triangle generates a triangle wave sample.
func (o *Oscillator) Triangle() float32 {
	sample := float32(1.0 - 4.0*math.Abs(o.phase-0.5))
	o.updatePhase()
	return sample
}

// Render fills a table of the given length with the selected waveform.
// For periodic shapes the frequency is snapped to a whole number of cycles
// over the table, so the table loops seamlessly. Noise uses the seed for
// reproducible output and ignores freq.
func Render(w Waveform, sampleRate, freq float64, length int, seed int64) []float32 {
	if length <= 0 || sampleRate <= 0 {
		return nil
	}
	table := make([]float32, length)

	if w == Noise {
		rng := rand.New(rand.NewSource(seed))
		for i := range table {
			table[i] = float32(rng.Float64()*2 - 1)
		}
		return table
	}

	seconds := float64(length) / sampleRate
	cycles := math.Round(freq * seconds)
	if cycles < 1 {
		cycles = 1
	}
	snapped := cycles / seconds

	osc := New(sampleRate)
	osc.SetFrequency(snapped)
	for i := range table {
		switch w {
		case Saw:
			table[i] = osc.Saw()
		case Square:
			table[i] = osc.Square()
		case Triangle:
			table[i] = osc.Triangle()
		default:
			table[i] = osc.Sine()
		}
	}
	return table
}
