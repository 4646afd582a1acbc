package debug

import (
	"math"
)

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Peak     float32 // largest absolute sample
	RMS      float32
	MaxStep  float32 // largest sample-to-sample jump
	HasNaN   bool
	NaNCount int
	HasInf   bool
	Silent   bool // peak below the silence threshold
}

const silenceThreshold = 0.0001

// Analyze scans an audio buffer for level and health statistics. Used by
// tests and the demo player to verify engine output is finite, bounded,
// and free of discontinuities.
func Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{}
	if len(buffer) == 0 {
		result.Silent = true
		return result
	}

	var sumSquares float64
	var last float32
	haveLast := false

	for _, sample := range buffer {
		f := float64(sample)
		if math.IsNaN(f) {
			result.HasNaN = true
			result.NaNCount++
			continue
		}
		if math.IsInf(f, 0) {
			result.HasInf = true
			continue
		}

		abs := sample
		if abs < 0 {
			abs = -abs
		}
		if abs > result.Peak {
			result.Peak = abs
		}
		sumSquares += f * f

		if haveLast {
			step := sample - last
			if step < 0 {
				step = -step
			}
			if step > result.MaxStep {
				result.MaxStep = step
			}
		}
		last = sample
		haveLast = true
	}

	result.RMS = float32(math.Sqrt(sumSquares / float64(len(buffer))))
	result.Silent = result.Peak < silenceThreshold
	return result
}

// IsFinite reports whether every sample in the buffer is a finite number.
func IsFinite(buffer []float32) bool {
	for _, s := range buffer {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
