package geodata

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// Area codes of the pinned transition.
const (
	Greenpath           route.Location = 3
	ForgottenCrossroads route.Location = 2
)

// Generate draws a random gain table.
//
// Steps:
//  1. Every off-diagonal entry is uniform in [lo, hi), rounded to 0.1.
//  2. The smallest positive off-diagonal entry is found.
//  3. The Greenpath→Forgotten Crossroads entry is replaced by that minimum
//     times the pin factor, rounded to 0.1.
//
// Without WithSeed or WithRand the stream is seeded with 1.
//
// Errors: ErrNoPositiveGain when step 2 finds nothing (only possible with
// WithRange(lo, hi) where hi <= 0.05).
//
// Complexity: O(Locations²).
func Generate(opts ...Option) (*matrix.Dense, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(1))
	}

	const n = route.Locations
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = m.Set(i, j, round1(cfg.lo+cfg.rng.Float64()*(cfg.hi-cfg.lo))); err != nil {
				return nil, err
			}
		}
	}

	sum, err := matrix.Describe(m, true)
	if err != nil {
		return nil, err
	}
	if math.IsInf(sum.MinPositive, 1) {
		return nil, fmt.Errorf("range [%g, %g): %w", cfg.lo, cfg.hi, ErrNoPositiveGain)
	}

	pinned := round1(sum.MinPositive * cfg.pinFactor)
	if err = m.Set(int(Greenpath)-1, int(ForgottenCrossroads)-1, pinned); err != nil {
		return nil, err
	}

	return m, nil
}

// round1 rounds x to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
