package granular

import (
	"math"
	"sync/atomic"

	"github.com/mgranger/granule/pkg/dsp/oscillator"
	"github.com/mgranger/granule/pkg/dsp/window"
	"github.com/mgranger/granule/pkg/framework/debug"
	"github.com/mgranger/granule/pkg/framework/param"
)

// Config sets the fixed properties of an engine.
type Config struct {
	// MaxGrains is the grain pool capacity. Default 64.
	MaxGrains int
	// Overflow selects what happens when an onset fires with a full
	// pool. Default DropNewest.
	Overflow OverflowPolicy
	// Seed seeds the distribution bank for reproducible output.
	// Default 1.
	Seed int64
	// Window selects the grain envelope shape. Default Hann.
	Window window.Shape
	// CubicInterpolation enables 4-point cubic source reads instead of
	// linear ones.
	CubicInterpolation bool
}

func (c *Config) applyDefaults() {
	if c.MaxGrains <= 0 {
		c.MaxGrains = 64
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
}

// GrainInfo is a copy of a live grain's descriptors for visualization.
type GrainInfo struct {
	ID              uint64
	Pitch           float64
	Pan             float64
	AgeSamples      int
	DurationSamples int
}

// Engine renders granular audio. One control thread may change parameters
// and swap sources while a single real-time thread calls ProcessBlock;
// ProcessBlock performs no allocation, locking, or I/O.
type Engine struct {
	cfg   Config
	model *Model
	bank  *Bank
	pool  *Pool

	// Single-slot hand-off cell for the source buffer. The audio thread
	// loads it once per block, so a swap is never observed mid-block.
	source atomic.Pointer[Source]

	sampleRate float64
	blockSize  int

	countdown int
	scheduled bool
	nextID    uint64
	spawned   uint64
	grainGain float64
	gain      *param.Smoother
}

// New creates an engine.
func New(cfg Config) *Engine {
	cfg.applyDefaults()
	bank := NewBank(cfg.Seed)
	e := &Engine{
		cfg:        cfg,
		bank:       bank,
		model:      NewModel(bank),
		pool:       NewPool(cfg.MaxGrains, cfg.Overflow),
		sampleRate: 44100,
		grainGain:  1 / math.Sqrt(float64(cfg.MaxGrains)),
		gain:       param.NewSmoother(44100, 0.005),
	}
	e.gain.Snap(1)
	return e
}

// Model returns the stochastic model; its setters are the engine's control
// surface.
func (e *Engine) Model() *Model {
	return e.model
}

// SampleRate returns the rate set by the last PrepareToPlay.
func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

// MaxGrains returns the grain pool capacity.
func (e *Engine) MaxGrains() int {
	return e.pool.Capacity()
}

// LiveGrains returns the number of currently sounding grains.
func (e *Engine) LiveGrains() int {
	return e.pool.Live()
}

// SpawnedGrains returns the total number of grains fired since the last
// PrepareToPlay.
func (e *Engine) SpawnedGrains() uint64 {
	return e.spawned
}

// PrepareToPlay resets all engine state for the given sample rate and
// block size: the pool is cleared, onset scheduling restarts, and the
// distribution bank rewinds to its seed. Must be called before the first
// ProcessBlock and never concurrently with it.
func (e *Engine) PrepareToPlay(sampleRate float64, blockSize int) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	e.sampleRate = sampleRate
	e.blockSize = blockSize
	e.bank.Rewind()
	e.Reset()
	e.gain.SetTime(sampleRate, 0.005)
	e.gain.Snap(e.model.masterGain.Value())
	debug.Debugf("prepared: rate=%g block=%d maxGrains=%d", sampleRate, blockSize, e.pool.Capacity())
}

// Reset stops playback between blocks: every grain is retired and the
// onset countdown restarts. Never call it concurrently with ProcessBlock.
func (e *Engine) Reset() {
	e.pool.Reset()
	e.countdown = 0
	e.scheduled = false
	e.nextID = 0
	e.spawned = 0
}

// LoadSample publishes a new source buffer. Control thread only; the audio
// thread starts reading it at the next block boundary. Passing nil clears
// the source, which makes the engine render silence.
func (e *Engine) LoadSample(src *Source) {
	e.source.Store(src)
	if src != nil {
		debug.Infof("source loaded: %d samples at %g Hz", src.Len(), src.SampleRate())
	} else {
		debug.Infof("source cleared")
	}
}

// SetGrainSource renders an internal waveform at the engine's sample rate
// and publishes it as the source. Control thread only.
func (e *Engine) SetGrainSource(w oscillator.Waveform) {
	src := NewWaveformSource(w, e.sampleRate, e.cfg.Seed)
	e.source.Store(src)
	debug.Infof("source set to internal %s waveform", w)
}

// Source returns the currently published source buffer, or nil.
func (e *Engine) Source() *Source {
	return e.source.Load()
}

// Snapshot copies live-grain descriptors into dst and returns the count.
// Intended for visualization and tests; call it between blocks, it is not
// synchronized with ProcessBlock.
func (e *Engine) Snapshot(dst []GrainInfo) int {
	n := 0
	for i := range e.pool.grains {
		g := &e.pool.grains[i]
		if !g.Alive || n >= len(dst) {
			continue
		}
		dst[n] = GrainInfo{
			ID:              g.ID,
			Pitch:           g.Pitch,
			Pan:             g.Pan,
			AgeSamples:      g.AgeSamples,
			DurationSamples: g.DurationSamples,
		}
		n++
	}
	return n
}

// ProcessBlock fills out with synthesized audio. out is planar: out[0] is
// the left channel, out[1] the right; a single-channel slice receives a
// mono mixdown. Output is a pure function of engine state and RNG draws.
// Real-time safe: no allocation, no locks, no I/O, work bounded by block
// length times pool capacity.
func (e *Engine) ProcessBlock(out [][]float32) {
	if len(out) == 0 || len(out[0]) == 0 {
		return
	}
	n := len(out[0])
	stereo := len(out) > 1
	if stereo && len(out[1]) < n {
		n = len(out[1])
	}

	src := e.source.Load()
	e.model.Refresh()
	e.gain.SetTarget(e.model.state.masterGain)

	for i := 0; i < n; i++ {
		e.advanceScheduler(src)

		var left, right float32
		for gi := range e.pool.grains {
			g := &e.pool.grains[gi]
			if !g.Alive {
				continue
			}
			l, r := renderStep(g, src, e.cfg.Window, e.cfg.CubicInterpolation)
			left += l
			right += r
			if !g.Alive {
				e.pool.Release(gi)
			}
		}

		gain := float32(e.gain.Next())
		if stereo {
			out[0][i] = left * gain
			out[1][i] = right * gain
		} else {
			out[0][i] = (left + right) * 0.5 * gain
		}
	}
}

// advanceScheduler runs the sample-accurate onset countdown: when it
// crosses zero a grain is spawned and the next gap drawn. A paused model
// (density zero) leaves the engine idle until a later block re-arms it.
func (e *Engine) advanceScheduler(src *Source) {
	if !e.scheduled {
		gap, ok := e.model.SamplesUntilNextEvent(e.sampleRate)
		if !ok {
			return
		}
		e.countdown = gap
		e.scheduled = true
	}

	e.countdown--
	if e.countdown > 0 {
		return
	}

	e.spawn(src)
	gap, ok := e.model.SamplesUntilNextEvent(e.sampleRate)
	if !ok {
		e.scheduled = false
		return
	}
	e.countdown = gap
}

// spawn allocates and populates one grain at the current sample.
func (e *Engine) spawn(src *Source) {
	idx, _, ok := e.pool.Acquire()
	if !ok {
		// DropNewest overflow: the onset is discarded.
		return
	}

	root := float64(defaultRootPitch)
	srcLen := 0
	if src != nil {
		root = src.rootPitch
		srcLen = src.Len()
	}

	g := e.model.NextGrain(e.sampleRate, srcLen)
	g.ID = e.nextID
	g.Amplitude = e.grainGain
	g.prepare(root)
	e.nextID++
	e.spawned++
	e.pool.grains[idx] = g
}
