// Package param provides lock-free control parameters shared between a
// control thread and the real-time audio thread.
package param

import (
	"math"
	"sync/atomic"
)

// Parameter is a single control value. Writes clamp to the declared range
// and publish atomically, so the audio thread can read it at any time
// without locking. There is no ordering guarantee across parameters.
type Parameter struct {
	ID           uint32
	Name         string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64
	StepCount    int32

	// Atomic value storage, stored as IEEE-754 bits.
	value atomic.Uint64
}

// Value returns the current value in the parameter's plain range.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Set clamps v to [Min, Max] and publishes it. Never fails: real-time
// control must never reject a value.
func (p *Parameter) Set(v float64) {
	if v < p.Min || math.IsNaN(v) {
		v = p.Min
	} else if v > p.Max {
		v = p.Max
	}
	if p.StepCount > 0 {
		v = math.Round(v)
	}
	p.value.Store(math.Float64bits(v))
}

// Normalized returns the current value mapped to [0, 1].
func (p *Parameter) Normalized() float64 {
	if p.Max <= p.Min {
		return 0
	}
	return (p.Value() - p.Min) / (p.Max - p.Min)
}

// SetNormalized sets the value from a normalized [0, 1] position.
func (p *Parameter) SetNormalized(normalized float64) {
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}
	p.Set(p.Min + normalized*(p.Max-p.Min))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.Set(p.DefaultValue)
}
