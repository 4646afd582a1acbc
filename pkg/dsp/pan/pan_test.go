package pan

import (
	"math"
	"testing"
)

func TestMonoToStereo(t *testing.T) {
	tests := []struct {
		name string
		pan  float32
		law  Law
	}{
		{"Center ConstantPower", 0.0, ConstantPower},
		{"Left ConstantPower", -1.0, ConstantPower},
		{"Right ConstantPower", 1.0, ConstantPower},
		{"Center Linear", 0.0, Linear},
		{"Left Linear", -1.0, Linear},
		{"Right Linear", 1.0, Linear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := MonoToStereo(tt.pan, tt.law)

			if left < 0 || left > 1 || right < 0 || right > 1 {
				t.Errorf("gains out of range: left=%f, right=%f", left, right)
			}

			switch tt.pan {
			case -1.0:
				if left < 0.9 || right > 0.1 {
					t.Errorf("hard left incorrect: left=%f, right=%f", left, right)
				}
			case 0.0:
				if math.Abs(float64(left-right)) > 0.001 {
					t.Errorf("center not balanced: left=%f, right=%f", left, right)
				}
			case 1.0:
				if right < 0.9 || left > 0.1 {
					t.Errorf("hard right incorrect: left=%f, right=%f", left, right)
				}
			}
		})
	}
}

func TestConstantPowerIsConstant(t *testing.T) {
	for pan := float32(-1); pan <= 1; pan += 0.125 {
		left, right := MonoToStereo(pan, ConstantPower)
		power := float64(left*left + right*right)
		if math.Abs(power-1.0) > 0.001 {
			t.Errorf("pan=%f: power %f, want 1", pan, power)
		}
	}
}

func TestMonoToStereoClampsPan(t *testing.T) {
	l1, r1 := MonoToStereo(-3, ConstantPower)
	l2, r2 := MonoToStereo(-1, ConstantPower)
	if l1 != l2 || r1 != r2 {
		t.Errorf("pan below -1 not clamped: (%f,%f) vs (%f,%f)", l1, r1, l2, r2)
	}
}

func TestProcess(t *testing.T) {
	mono := []float32{1.0, 0.5, -0.5, -1.0}
	leftOut := make([]float32, 4)
	rightOut := make([]float32, 4)

	Process(mono, -1.0, ConstantPower, leftOut, rightOut)

	for i := range mono {
		if math.Abs(float64(leftOut[i]-mono[i])) > 0.001 {
			t.Errorf("sample %d: left=%f, want %f", i, leftOut[i], mono[i])
		}
		if math.Abs(float64(rightOut[i])) > 0.001 {
			t.Errorf("sample %d: right=%f, want 0", i, rightOut[i])
		}
	}
}
