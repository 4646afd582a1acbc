package granular

import (
	"math/rand"
)

// Bank is the engine's single source of randomness. It is owned and used
// exclusively by the real-time thread; the control thread must never touch
// it. Deterministic for a fixed seed.
type Bank struct {
	seed int64
	rng  *rand.Rand
}

// NewBank creates a distribution bank seeded for reproducible output.
func NewBank(seed int64) *Bank {
	return &Bank{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Reseed rewinds the bank to the given seed.
func (b *Bank) Reseed(seed int64) {
	b.seed = seed
	b.rng.Seed(seed)
}

// Rewind restores the bank to its original seed.
func (b *Bank) Rewind() {
	b.rng.Seed(b.seed)
}

// Uniform returns a draw from [0, 1).
func (b *Bank) Uniform() float64 {
	return b.rng.Float64()
}

// Gaussian returns a normal draw with the given mean and standard deviation.
// A zero stddev returns the mean exactly (one RNG draw is still consumed,
// keeping the stream position independent of parameter values).
func (b *Bank) Gaussian(mean, stddev float64) float64 {
	return mean + b.rng.NormFloat64()*stddev
}

// ExponentialInterval returns an inter-arrival time in seconds for a
// Poisson process with the given mean rate (events per second). The draws
// are independent and exponentially distributed, which is what produces a
// memoryless, clustering-capable onset pattern.
func (b *Bank) ExponentialInterval(rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return b.rng.ExpFloat64() / rate
}
