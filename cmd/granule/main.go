// Command granule is a demo player for the granular engine: it loads a WAV
// file (or renders an internal waveform) as the grain source and streams
// the engine's output to the default audio device.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/youpy/go-wav"

	"github.com/mgranger/granule/pkg/dsp/oscillator"
	"github.com/mgranger/granule/pkg/framework/debug"
	"github.com/mgranger/granule/pkg/granular"
)

func main() {
	var (
		samplePath = flag.String("sample", "", "WAV file to granulate (defaults to an internal waveform)")
		waveName   = flag.String("wave", "sine", "internal waveform when no sample is given: sine, saw, square, triangle, noise")
		rate       = flag.Int("rate", 44100, "sample rate in Hz")
		block      = flag.Int("block", 512, "block size in samples")
		maxGrains  = flag.Int("grains", 64, "grain pool capacity")
		steal      = flag.Bool("steal", false, "steal the dying grain on overflow instead of dropping the onset")
		seed       = flag.Int64("seed", 1, "random seed")
		density    = flag.Float64("density", 100, "grains per second (0 pauses)")
		poisson    = flag.Bool("poisson", false, "Poisson onset timing instead of a regular pulse train")
		pitch      = flag.Float64("pitch", 60, "central pitch, MIDI note number")
		dispersion = flag.Float64("dispersion", 12, "pitch dispersion in semitones")
		panCenter  = flag.Float64("pan", 0, "central pan in [-1, 1]")
		panSpread  = flag.Float64("spread", 0.25, "pan spread")
		duration   = flag.Float64("duration", 100, "mean grain duration in ms")
		variation  = flag.Float64("variation", 20, "grain duration variation in ms")
		gain       = flag.Float64("gain", 0.8, "master gain in [0, 1]")
		scatter    = flag.Bool("scatter", false, "start each grain at a random source offset")
		loop       = flag.Bool("loop", false, "loop the source instead of truncating grains at its end")
		seconds    = flag.Float64("seconds", 10, "how long to play (0 = until interrupted)")
		verbose    = flag.Bool("verbose", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		debug.SetLevel(debug.LogLevelDebug)
	} else {
		debug.SetLevel(debug.LogLevelInfo)
	}

	if err := run(*samplePath, *waveName, *rate, *block, *maxGrains, *steal,
		*seed, *density, *poisson, *pitch, *dispersion, *panCenter, *panSpread,
		*duration, *variation, *gain, *scatter, *loop, *seconds); err != nil {
		fmt.Fprintf(os.Stderr, "granule: %v\n", err)
		os.Exit(1)
	}
}

func run(samplePath, waveName string, rate, block, maxGrains int, steal bool,
	seed int64, density float64, poisson bool, pitch, dispersion, panCenter,
	panSpread, duration, variation, gain float64, scatter, loop bool,
	seconds float64) error {

	cfg := granular.Config{
		MaxGrains: maxGrains,
		Seed:      seed,
	}
	if steal {
		cfg.Overflow = granular.StealShortestRemaining
	}

	engine := granular.New(cfg)
	engine.PrepareToPlay(float64(rate), block)

	m := engine.Model()
	m.SetDensity(density)
	m.SetPitchAndDispersion(pitch, dispersion)
	m.SetPanAndSpread(panCenter, panSpread)
	m.SetDurationAndVariation(duration, variation)
	m.SetMasterGain(gain)
	if poisson {
		m.SetTemporalDistribution(granular.Poisson)
	}
	if scatter {
		m.SetStartMode(granular.StartRandom)
	}

	if samplePath != "" {
		src, err := loadWAV(samplePath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", samplePath, err)
		}
		if src.SampleRate() != float64(rate) {
			debug.Warnf("sample rate %g != engine rate %d: grains play transposed",
				src.SampleRate(), rate)
		}
		src.SetLoop(loop)
		engine.LoadSample(src)
	} else {
		w, err := parseWaveform(waveName)
		if err != nil {
			return err
		}
		engine.SetGrainSource(w)
	}

	stream := newEngineStream(engine, block)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(stream)
	player.Play()
	defer player.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	if seconds > 0 {
		select {
		case <-time.After(time.Duration(seconds * float64(time.Second))):
		case <-interrupt:
		}
	} else {
		<-interrupt
	}

	debug.Infof("played %d grains", engine.SpawnedGrains())
	return nil
}

func parseWaveform(name string) (oscillator.Waveform, error) {
	switch name {
	case "sine":
		return oscillator.Sine, nil
	case "saw":
		return oscillator.Saw, nil
	case "square":
		return oscillator.Square, nil
	case "triangle":
		return oscillator.Triangle, nil
	case "noise":
		return oscillator.Noise, nil
	default:
		return 0, fmt.Errorf("unknown waveform %q", name)
	}
}

// loadWAV decodes a WAV file into a planar buffer and wraps it as a grain
// source.
func loadWAV(path string) (*granular.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, fmt.Errorf("reading format: %w", err)
	}

	numChannels := int(format.NumChannels)
	if numChannels == 0 {
		return nil, fmt.Errorf("no channels in %s", path)
	}
	channels := make([][]float32, numChannels)

	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		for _, sample := range samples {
			for ch := 0; ch < numChannels; ch++ {
				channels[ch] = append(channels[ch], float32(r.FloatValue(sample, uint(ch))))
			}
		}
	}

	debug.Infof("loaded %s: %d channels, %d frames at %d Hz",
		path, numChannels, len(channels[0]), format.SampleRate)
	return granular.NewSource(channels, float64(format.SampleRate)), nil
}

// engineStream adapts the engine's planar block renderer to the pull-based
// io.Reader the audio device consumes, packing interleaved float32 LE
// frames.
type engineStream struct {
	engine  *granular.Engine
	left    []float32
	right   []float32
	scratch []byte
	pos     int
}

func newEngineStream(engine *granular.Engine, block int) *engineStream {
	s := &engineStream{
		engine:  engine,
		left:    make([]float32, block),
		right:   make([]float32, block),
		scratch: make([]byte, block*8),
	}
	s.pos = len(s.scratch) // force a render on the first Read
	return s
}

func (s *engineStream) Read(p []byte) (int, error) {
	if s.pos >= len(s.scratch) {
		s.engine.ProcessBlock([][]float32{s.left, s.right})
		for i := range s.left {
			binary.LittleEndian.PutUint32(s.scratch[i*8:], math.Float32bits(s.left[i]))
			binary.LittleEndian.PutUint32(s.scratch[i*8+4:], math.Float32bits(s.right[i]))
		}
		s.pos = 0
	}
	n := copy(p, s.scratch[s.pos:])
	s.pos += n
	return n, nil
}
