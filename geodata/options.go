// SPDX-License-Identifier: MIT

package geodata

import "math/rand"

const (
	// DefaultLow and DefaultHigh bound the uniform gain draw.
	DefaultLow  = -300.0
	DefaultHigh = 900.0
	// DefaultPinFactor scales the smallest positive gain for the
	// Greenpath→Forgotten Crossroads entry (3.2% below it).
	DefaultPinFactor = 0.968
)

// Option customizes Generate.
// Option constructors panic on meaningless values; Generate itself does not.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	lo, hi    float64
	pinFactor float64
}

func defaultConfig() config {
	return config{lo: DefaultLow, hi: DefaultHigh, pinFactor: DefaultPinFactor}
}

// WithSeed draws from a new deterministic stream seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("geodata: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the uniform draw interval [lo, hi). Panics unless lo < hi.
func WithRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic("geodata: WithRange requires lo < hi")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithPinFactor sets the multiplier applied to the smallest positive gain for
// the pinned entry. Panics unless 0 < f <= 1.
func WithPinFactor(f float64) Option {
	if !(f > 0 && f <= 1) {
		panic("geodata: WithPinFactor requires 0 < f <= 1")
	}
	return func(c *config) {
		c.pinFactor = f
	}
}
