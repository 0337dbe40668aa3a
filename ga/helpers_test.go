package ga_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
	"github.com/stretchr/testify/require"
)

// testGain returns a deterministic 10×10 table with positive, uneven
// off-diagonal gains so roulette selection is well defined.
func testGain(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(route.Locations, route.Locations)
	require.NoError(t, err)
	for i := 0; i < route.Locations; i++ {
		for j := 0; j < route.Locations; j++ {
			if i != j {
				require.NoError(t, m.Set(i, j, float64((i*7+j*3)%11)+1))
			}
		}
	}
	return m
}

// constGain returns a 10×10 table with every off-diagonal entry equal to w.
func constGain(t testing.TB, w float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(route.Locations, route.Locations)
	require.NoError(t, err)
	for i := 0; i < route.Locations; i++ {
		for j := 0; j < route.Locations; j++ {
			if i != j {
				require.NoError(t, m.Set(i, j, w))
			}
		}
	}
	return m
}

// smallOptions is a fast configuration for engine tests.
func smallOptions(seed int64) ga.Options {
	opts := ga.DefaultOptions()
	opts.PopulationSize = 20
	opts.Generations = 8
	opts.Seed = seed
	return opts
}

// sortedInterior returns the interior of r, Skip read as SkipEligible, sorted.
func sortedInterior(r route.Route) []int {
	in := route.Interior(r).Ints()
	for i, v := range in {
		if route.Location(v) == route.Skip {
			in[i] = int(route.SkipEligible)
		}
	}
	sort.Ints(in)
	return in
}

// allInterior is sortedInterior of any valid route.
var allInterior = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}

// seeded returns a fresh deterministic stream.
func seeded(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
