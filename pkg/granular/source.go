package granular

import (
	"github.com/mgranger/granule/pkg/dsp/interpolation"
	"github.com/mgranger/granule/pkg/dsp/oscillator"
)

// defaultRootPitch is the MIDI note a source is assumed to sound at when
// played back untransposed.
const defaultRootPitch = 60

// Source is a read-only sample buffer grains read from. Build and
// configure it on the control thread, then hand it to the engine; the
// engine publishes it through an atomic cell and the audio thread picks it
// up at the next block boundary. Do not mutate a Source after handing it
// to an engine.
type Source struct {
	data       []float32
	sampleRate float64
	rootPitch  float64
	loop       bool
}

// NewMonoSource wraps a mono sample buffer.
func NewMonoSource(samples []float32, sampleRate float64) *Source {
	return &Source{
		data:       samples,
		sampleRate: sampleRate,
		rootPitch:  defaultRootPitch,
	}
}

// NewSource mixes a planar multichannel buffer down to mono and wraps it.
func NewSource(channels [][]float32, sampleRate float64) *Source {
	if len(channels) == 0 {
		return NewMonoSource(nil, sampleRate)
	}
	if len(channels) == 1 {
		return NewMonoSource(channels[0], sampleRate)
	}

	length := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) < length {
			length = len(ch)
		}
	}
	mono := make([]float32, length)
	scale := float32(1) / float32(len(channels))
	for _, ch := range channels {
		for i := 0; i < length; i++ {
			mono[i] += ch[i] * scale
		}
	}
	return NewMonoSource(mono, sampleRate)
}

// NewWaveformSource renders one second of an internal waveform at the
// given sample rate. Periodic shapes loop seamlessly, so the source is
// marked looping.
func NewWaveformSource(w oscillator.Waveform, sampleRate float64, seed int64) *Source {
	length := int(sampleRate)
	src := NewMonoSource(oscillator.Render(w, sampleRate, middleC, length, seed), sampleRate)
	src.loop = true
	return src
}

// middleC is the frequency of MIDI note 60, the default root pitch.
const middleC = 261.6255653005986

// SetRootPitch declares which MIDI note the buffer sounds at when played
// untransposed. Control thread, before handing the source to an engine.
func (s *Source) SetRootPitch(note float64) {
	s.rootPitch = note
}

// SetLoop selects looping instead of truncation when a grain's read cursor
// passes the end of the buffer.
func (s *Source) SetLoop(loop bool) {
	s.loop = loop
}

// Len returns the source length in samples.
func (s *Source) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// SampleRate returns the source's native sample rate.
func (s *Source) SampleRate() float64 {
	return s.sampleRate
}

// RootPitch returns the source's root note.
func (s *Source) RootPitch() float64 {
	return s.rootPitch
}

// Loop reports whether grain cursors wrap at the end of the buffer.
func (s *Source) Loop() bool {
	return s.loop
}

// at reads the buffer at a fractional position. Out-of-range reads fail
// closed and return silence. Looping sources wrap the interpolation
// neighbor so the seam stays continuous.
func (s *Source) at(pos float64, cubic bool) float32 {
	if s == nil || len(s.data) == 0 || pos < 0 {
		return 0
	}
	if s.loop {
		idx := int(pos)
		if idx >= len(s.data) {
			return 0
		}
		next := idx + 1
		if next >= len(s.data) {
			next = 0
		}
		frac := float32(pos - float64(idx))
		return interpolation.Linear(s.data[idx], s.data[next], frac)
	}
	if cubic {
		return interpolation.AtCubic(s.data, pos)
	}
	return interpolation.At(s.data, pos)
}

// wrap folds a cursor back into the buffer for looping sources.
func (s *Source) wrap(pos float64) float64 {
	n := float64(len(s.data))
	if n == 0 {
		return 0
	}
	for pos >= n {
		pos -= n
	}
	return pos
}
