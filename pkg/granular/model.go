package granular

import (
	"math"

	"github.com/mgranger/granule/pkg/framework/param"
)

// Distribution selects the statistical model governing inter-onset timing.
type Distribution int

const (
	// Uniform fires grains as a regular pulse train: a fixed gap of
	// sampleRate/density samples, no randomness.
	Uniform Distribution = iota
	// Poisson draws each gap independently from an exponential
	// distribution with rate = density, modeling a memoryless point
	// process with audible clustering.
	Poisson
)

// StartMode selects where a new grain begins reading the source.
type StartMode int

const (
	// StartAtZero starts every grain at the beginning of the source.
	StartAtZero StartMode = iota
	// StartRandom starts each grain at a uniformly random source offset.
	StartRandom
)

// Parameter IDs for the model's control surface.
const (
	ParamCentralPitch uint32 = iota
	ParamPitchDispersion
	ParamCentralPan
	ParamPanSpread
	ParamMeanDuration
	ParamDurationVariation
	ParamDensity
	ParamTemporalDistribution
	ParamStartMode
	ParamMasterGain
)

// minGrainSamples floors generated durations so a grain is never
// zero-length.
const minGrainSamples = 8

// modelState is the audio thread's per-block snapshot of the control
// parameters. One atomic read per parameter; no cross-parameter ordering
// is guaranteed, which is acceptable since the next block self-corrects.
type modelState struct {
	centralPitch      float64
	pitchDispersion   float64
	centralPan        float64
	panSpread         float64
	meanDurationMs    float64
	durationVariation float64
	density           float64
	temporal          Distribution
	start             StartMode
	masterGain        float64
}

// Model holds the user-facing stochastic control parameters and draws
// onset gaps and grain properties from them. Setters are safe to call from
// the control thread at any time; the generate methods belong exclusively
// to the real-time thread.
type Model struct {
	params *param.Registry
	bank   *Bank

	// Cached handles so the audio thread never takes the registry lock.
	pitch      *param.Parameter
	dispersion *param.Parameter
	panCenter  *param.Parameter
	panSpread  *param.Parameter
	duration   *param.Parameter
	variation  *param.Parameter
	density    *param.Parameter
	temporal   *param.Parameter
	startMode  *param.Parameter
	masterGain *param.Parameter

	state modelState
}

// NewModel creates a model with the given distribution bank and default
// parameter values.
func NewModel(bank *Bank) *Model {
	m := &Model{
		params: param.NewRegistry(),
		bank:   bank,
	}

	m.pitch = param.New(ParamCentralPitch, "Central Pitch").
		Range(0, 127).Default(60).Unit("note").Build()
	m.dispersion = param.New(ParamPitchDispersion, "Pitch Dispersion").
		Range(0, 48).Default(12).Unit("semitones").Build()
	m.panCenter = param.New(ParamCentralPan, "Pan").
		Range(-1, 1).Default(0).Build()
	m.panSpread = param.New(ParamPanSpread, "Pan Spread").
		Range(0, 1).Default(0.25).Build()
	m.duration = param.New(ParamMeanDuration, "Duration").
		Range(1, 2000).Default(100).Unit("ms").Build()
	m.variation = param.New(ParamDurationVariation, "Duration Variation").
		Range(0, 1000).Default(20).Unit("ms").Build()
	m.density = param.New(ParamDensity, "Density").
		Range(0, 1000).Default(100).Unit("grains/s").Build()
	m.temporal = param.New(ParamTemporalDistribution, "Temporal Distribution").
		Range(0, 1).Steps(1).Default(float64(Uniform)).Build()
	m.startMode = param.New(ParamStartMode, "Start Mode").
		Range(0, 1).Steps(1).Default(float64(StartAtZero)).Build()
	m.masterGain = param.New(ParamMasterGain, "Master Gain").
		Range(0, 1).Default(1).Build()

	m.params.Add(m.pitch, m.dispersion, m.panCenter, m.panSpread,
		m.duration, m.variation, m.density, m.temporal, m.startMode,
		m.masterGain)

	return m
}

// Params exposes the registry for generic control surfaces.
func (m *Model) Params() *param.Registry {
	return m.params
}

// SetPitchAndDispersion sets the central pitch (MIDI note number) and the
// Gaussian spread around it in semitones. Out-of-range values are clamped.
func (m *Model) SetPitchAndDispersion(centralPitch, dispersion float64) {
	m.pitch.Set(centralPitch)
	m.dispersion.Set(dispersion)
}

// SetDurationAndVariation sets the mean grain duration and its Gaussian
// spread, both in milliseconds.
func (m *Model) SetDurationAndVariation(averageMs, variationMs float64) {
	m.duration.Set(averageMs)
	m.variation.Set(variationMs)
}

// SetPanAndSpread sets the central stereo position in [-1, 1] and the
// Gaussian spread around it.
func (m *Model) SetPanAndSpread(centralPan, spread float64) {
	m.panCenter.Set(centralPan)
	m.panSpread.Set(spread)
}

// SetDensity sets the mean grain rate in grains per second. Zero (or any
// negative value, which clamps to zero) pauses onset scheduling.
func (m *Model) SetDensity(grainsPerSecond float64) {
	m.density.Set(grainsPerSecond)
}

// SetTemporalDistribution selects the inter-onset timing model.
func (m *Model) SetTemporalDistribution(d Distribution) {
	m.temporal.Set(float64(d))
}

// SetStartMode selects where new grains begin reading the source.
func (m *Model) SetStartMode(mode StartMode) {
	m.startMode.Set(float64(mode))
}

// SetMasterGain sets the output gain in [0, 1].
func (m *Model) SetMasterGain(gain float64) {
	m.masterGain.Set(gain)
}

// Refresh snapshots the published parameters. The engine calls it once at
// the top of every block; all draws within the block use the snapshot.
func (m *Model) Refresh() {
	m.state = modelState{
		centralPitch:      m.pitch.Value(),
		pitchDispersion:   m.dispersion.Value(),
		centralPan:        m.panCenter.Value(),
		panSpread:         m.panSpread.Value(),
		meanDurationMs:    m.duration.Value(),
		durationVariation: m.variation.Value(),
		density:           m.density.Value(),
		temporal:          Distribution(m.temporal.Value()),
		start:             StartMode(m.startMode.Value()),
		masterGain:        m.masterGain.Value(),
	}
}

// SamplesUntilNextEvent returns the gap to the next grain onset in samples.
// ok is false while the model is paused (density zero): no new grain
// should be scheduled this block.
func (m *Model) SamplesUntilNextEvent(sampleRate float64) (gap int, ok bool) {
	s := &m.state
	if s.density <= 0 {
		return 0, false
	}

	var seconds float64
	switch s.temporal {
	case Poisson:
		seconds = m.bank.ExponentialInterval(s.density)
	default:
		seconds = 1 / s.density
	}

	gap = int(math.Round(seconds * sampleRate))
	if gap < 1 {
		// At most one onset per sample; this bounds per-block spawn
		// work by the block length.
		gap = 1
	}
	return gap, true
}

// NextGrain draws the properties of a new grain from the current snapshot.
// Pitch and pan come from Gaussians around their central values (pan
// clamped to [-1, 1]), duration from a Gaussian floored at a few samples.
// The caller assigns ID and amplitude and calls prepare.
func (m *Model) NextGrain(sampleRate float64, sourceLen int) Grain {
	s := &m.state

	pitch := m.bank.Gaussian(s.centralPitch, s.pitchDispersion)

	panPos := m.bank.Gaussian(s.centralPan, s.panSpread)
	if panPos < -1 {
		panPos = -1
	} else if panPos > 1 {
		panPos = 1
	}

	durMs := m.bank.Gaussian(s.meanDurationMs, s.durationVariation)
	dur := int(math.Round(durMs * sampleRate / 1000))
	if dur < minGrainSamples {
		dur = minGrainSamples
	}

	start := 0.0
	if s.start == StartRandom && sourceLen > 0 {
		start = m.bank.Uniform() * float64(sourceLen)
	}

	return Grain{
		Alive:           true,
		Pitch:           pitch,
		Pan:             panPos,
		DurationSamples: dur,
		SourcePos:       start,
	}
}
