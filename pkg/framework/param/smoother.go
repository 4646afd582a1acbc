package param

import (
	"math"
)

// Smoother ramps a control value toward its target with a one-pole filter
// to prevent zipper noise. It is owned by the audio thread; feed it the
// latest parameter value once per block and pull one value per sample.
type Smoother struct {
	current   float64
	target    float64
	coef      float64
	threshold float64
}

// NewSmoother creates a smoother with the given time constant.
func NewSmoother(sampleRate, seconds float64) *Smoother {
	s := &Smoother{threshold: 1e-6}
	s.SetTime(sampleRate, seconds)
	return s
}

// SetTime reconfigures the smoothing time constant.
func (s *Smoother) SetTime(sampleRate, seconds float64) {
	if sampleRate <= 0 || seconds <= 0 {
		s.coef = 0
		return
	}
	s.coef = math.Exp(-1.0 / (seconds * sampleRate))
}

// SetTarget sets the value the smoother ramps toward.
func (s *Smoother) SetTarget(target float64) {
	s.target = target
}

// Snap jumps immediately to v, bypassing the ramp.
func (s *Smoother) Snap(v float64) {
	s.current = v
	s.target = v
}

// Next returns the next smoothed value.
func (s *Smoother) Next() float64 {
	if math.Abs(s.target-s.current) <= s.threshold {
		s.current = s.target
		return s.current
	}
	s.current = s.target + (s.current-s.target)*s.coef
	return s.current
}
