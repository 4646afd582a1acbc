// Package pan provides stereo panning laws for placing mono sources.
package pan

import (
	"math"
)

// Law represents different panning laws.
type Law int

const (
	// ConstantPower uses sine/cosine gains so perceived loudness stays
	// constant across the stereo field (the default for grain placement).
	ConstantPower Law = iota
	// Linear uses straight linear gains (constant power not maintained).
	Linear
)

// MonoToStereo converts a pan position into left and right channel gains.
// pan: -1.0 = hard left, 0.0 = center, 1.0 = hard right.
func MonoToStereo(pan float32, law Law) (left, right float32) {
	if pan < -1 {
		pan = -1
	} else if pan > 1 {
		pan = 1
	}
	switch law {
	case Linear:
		return linearPan(pan)
	default:
		return constantPowerPan(pan)
	}
}

// Process pans a mono buffer into left and right output buffers.
func Process(mono []float32, pan float32, law Law, leftOut, rightOut []float32) {
	leftGain, rightGain := MonoToStereo(pan, law)

	length := len(mono)
	if len(leftOut) < length {
		length = len(leftOut)
	}
	if len(rightOut) < length {
		length = len(rightOut)
	}

	for i := 0; i < length; i++ {
		sample := mono[i]
		leftOut[i] = sample * leftGain
		rightOut[i] = sample * rightGain
	}
}

// constantPowerPan maps pan from [-1, 1] to an angle in [0, π/2] and uses
// cos/sin gains, so left²+right² == 1 at every position.
func constantPowerPan(pan float32) (left, right float32) {
	angle := (float64(pan) + 1.0) * math.Pi / 4.0
	left = float32(math.Cos(angle))
	right = float32(math.Sin(angle))
	return
}

// linearPan crossfades linearly between the channels.
func linearPan(pan float32) (left, right float32) {
	left = (1.0 - pan) * 0.5
	right = (1.0 + pan) * 0.5
	return
}
