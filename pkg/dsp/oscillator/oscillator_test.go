package oscillator

import (
	"math"
	"testing"
)

func TestSineStartsAtZero(t *testing.T) {
	osc := New(44100)
	if s := osc.Sine(); math.Abs(float64(s)) > 1e-6 {
		t.Errorf("first sine sample = %f, want 0", s)
	}
}

func TestWaveformRange(t *testing.T) {
	tests := []struct {
		name string
		w    Waveform
	}{
		{"sine", Sine},
		{"saw", Saw},
		{"square", Square},
		{"triangle", Triangle},
		{"noise", Noise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Render(tt.w, 44100, 261.63, 44100, 1)
			if len(table) != 44100 {
				t.Fatalf("table length %d, want 44100", len(table))
			}
			for i, s := range table {
				if s < -1.0001 || s > 1.0001 {
					t.Fatalf("sample %d out of range: %f", i, s)
				}
			}
		})
	}
}

func TestRenderLoopsSeamlessly(t *testing.T) {
	// A snapped-frequency sine table must end where it started.
	table := Render(Sine, 44100, 440, 44100, 0)
	first := float64(table[0])
	// The sample after the last one would be table[0] again; the last
	// sample must already be within one phase step of it.
	last := float64(table[len(table)-1])
	maxStep := 2 * math.Pi * 441 / 44100
	if math.Abs(last-first) > maxStep {
		t.Errorf("loop seam: last=%f first=%f", last, first)
	}
}

func TestNoiseDeterministicBySeed(t *testing.T) {
	a := Render(Noise, 44100, 0, 1024, 7)
	b := Render(Noise, 44100, 0, 1024, 7)
	c := Render(Noise, 44100, 0, 1024, 8)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestRenderDegenerate(t *testing.T) {
	if table := Render(Sine, 44100, 440, 0, 0); table != nil {
		t.Errorf("zero length: got %d samples, want nil", len(table))
	}
	if table := Render(Sine, 0, 440, 100, 0); table != nil {
		t.Errorf("zero sample rate: got %d samples, want nil", len(table))
	}
}
