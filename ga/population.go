package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// MinPopulationSize is the smallest population Run accepts: breeding needs
// two parents.
const MinPopulationSize = 2

// Population is an ordered collection of routes. Order matters only because
// elitism overwrites the last slot.
type Population []route.Route

// Clone returns a deep copy of p.
func (p Population) Clone() Population {
	out := make(Population, len(p))
	for i, r := range p {
		out[i] = r.Clone()
	}

	return out
}

// Initializer builds the generation-0 population.
type Initializer func(rng *rand.Rand, size int) (Population, error)

// NewRoute samples uniformly random permutations of the nine non-fixed
// locations, wraps them with the start/end and retries until the route is
// valid. Roughly two thirds of all permutations pass, so the expected number
// of draws is small.
func NewRoute(rng *rand.Rand) route.Route {
	rng = orDefault(rng)
	in := make(route.Route, 0, route.InteriorLength)
	for loc := route.Start + 1; loc <= route.Locations; loc++ {
		in = append(in, loc)
	}
	for {
		shuffleInPlace(in, rng)
		r := route.WithEndpoints(in)
		if route.IsValid(r) {
			return r
		}
	}
}

// Initialize returns size independently sampled valid routes.
// A nil rng uses the seed==0 stream.
//
// Errors: ErrPopulationTooSmall when size < 1.
func Initialize(rng *rand.Rand, size int) (Population, error) {
	if size < 1 {
		return nil, fmt.Errorf("size=%d: %w", size, ErrPopulationTooSmall)
	}
	rng = orDefault(rng)
	pop := make(Population, size)
	for i := range pop {
		pop[i] = NewRoute(rng)
	}

	return pop, nil
}

// EvaluatePopulation returns the gain of every route, in order. Each slot of
// pop is replaced by the encoding route.Analyze chose for it, so a compact
// encoding that wins becomes authoritative for the rest of the run.
//
// Complexity: O(len(pop) * route.Length).
func EvaluatePopulation(pop Population, gain matrix.Matrix) ([]float64, error) {
	fit := make([]float64, len(pop))
	for i, r := range pop {
		ev, err := route.Analyze(r, gain)
		if err != nil {
			return nil, fmt.Errorf("individual %d %v: %w", i, r, err)
		}
		pop[i] = ev.Route
		fit[i] = ev.Gain
	}

	return fit, nil
}
