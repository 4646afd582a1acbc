package param

import (
	"math"
	"testing"
)

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(44100, 0.005)
	s.Snap(0)
	s.SetTarget(1)

	var v float64
	for i := 0; i < 4410; i++ { // 100ms, 20 time constants
		v = s.Next()
	}
	if math.Abs(v-1) > 1e-3 {
		t.Errorf("value after 100ms = %f, want ~1", v)
	}
}

func TestSmootherMonotonicRamp(t *testing.T) {
	s := NewSmoother(44100, 0.01)
	s.Snap(0)
	s.SetTarget(1)

	prev := 0.0
	for i := 0; i < 1000; i++ {
		v := s.Next()
		if v < prev {
			t.Fatalf("ramp not monotonic at sample %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestSmootherSnap(t *testing.T) {
	s := NewSmoother(44100, 0.01)
	s.Snap(0.8)
	if v := s.Next(); v != 0.8 {
		t.Errorf("after Snap(0.8), Next() = %f", v)
	}
}
