package interpolation

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		y0, y1, frac, want float32
	}{
		{0, 1, 0.5, 0.5},
		{0, 1, 0, 0},
		{0, 1, 1, 1},
		{-1, 1, 0.25, -0.5},
		{2, 2, 0.7, 2},
	}
	for _, tt := range tests {
		if got := Linear(tt.y0, tt.y1, tt.frac); got != tt.want {
			t.Errorf("Linear(%f, %f, %f) = %f, want %f", tt.y0, tt.y1, tt.frac, got, tt.want)
		}
	}
}

func TestCubicPassesThroughKnots(t *testing.T) {
	// At frac=0 the curve must hit y1 exactly.
	if got := Cubic(0.1, 0.5, 0.9, 0.3, 0); got != 0.5 {
		t.Errorf("Cubic at frac=0 = %f, want 0.5", got)
	}
}

func TestAt(t *testing.T) {
	ramp := []float32{0, 1, 2, 3}

	if got := At(ramp, 1.5); math.Abs(float64(got-1.5)) > 1e-6 {
		t.Errorf("At(ramp, 1.5) = %f, want 1.5", got)
	}
	if got := At(ramp, 0); got != 0 {
		t.Errorf("At(ramp, 0) = %f, want 0", got)
	}
	if got := At(ramp, 2); got != 2 {
		t.Errorf("At(ramp, 2) = %f, want 2", got)
	}
}

func TestAtFailsClosed(t *testing.T) {
	buf := []float32{1, 1, 1}
	cases := []float64{-0.1, 3, 3.5, 100}
	for _, pos := range cases {
		if got := At(buf, pos); got != 0 {
			t.Errorf("At(buf, %f) = %f, want 0", pos, got)
		}
		if got := AtCubic(buf, pos); got != 0 {
			t.Errorf("AtCubic(buf, %f) = %f, want 0", pos, got)
		}
	}
	if got := At(nil, 0); got != 0 {
		t.Errorf("At(nil, 0) = %f, want 0", got)
	}
}

func TestAtCubicInterior(t *testing.T) {
	// A straight ramp is reproduced exactly by Catmull-Rom.
	ramp := []float32{0, 1, 2, 3, 4, 5}
	for _, pos := range []float64{1.25, 2.5, 3.75} {
		if got := AtCubic(ramp, pos); math.Abs(float64(got)-pos) > 1e-5 {
			t.Errorf("AtCubic(ramp, %f) = %f, want %f", pos, got, pos)
		}
	}
}
