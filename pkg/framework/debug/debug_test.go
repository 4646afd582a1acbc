package debug

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test")
	l.SetLevel(LogLevelWarn)

	l.Debugf("hidden %d", 1)
	l.Infof("hidden %d", 2)
	l.Warnf("shown %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "shown 3") || !strings.Contains(out, "shown 4") {
		t.Errorf("expected warn/error messages, got: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing level tags: %q", out)
	}
}

func TestAnalyze(t *testing.T) {
	buf := []float32{0, 0.5, -0.5, 1.0, -1.0}
	r := Analyze(buf)

	if r.Peak != 1.0 {
		t.Errorf("peak = %f, want 1.0", r.Peak)
	}
	if r.HasNaN || r.HasInf {
		t.Error("false NaN/Inf detection")
	}
	if r.Silent {
		t.Error("non-silent buffer reported silent")
	}
	if math.Abs(float64(r.MaxStep)-2.0) > 1e-6 {
		t.Errorf("max step = %f, want 2.0", r.MaxStep)
	}
}

func TestAnalyzeNaN(t *testing.T) {
	buf := []float32{0, float32(math.NaN()), 0.2}
	r := Analyze(buf)
	if !r.HasNaN || r.NaNCount != 1 {
		t.Errorf("NaN not detected: %+v", r)
	}
	if IsFinite(buf) {
		t.Error("IsFinite accepted a NaN buffer")
	}
}

func TestAnalyzeSilence(t *testing.T) {
	r := Analyze(make([]float32, 256))
	if !r.Silent {
		t.Error("zero buffer not reported silent")
	}
	if r.Peak != 0 || r.RMS != 0 {
		t.Errorf("zero buffer stats wrong: %+v", r)
	}
}
