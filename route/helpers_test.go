package route_test

import (
	"math/rand"

	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// permutations returns n seeded shuffles of base (duplicates possible).
func permutations(base route.Route, n int) []route.Route {
	rng := rand.New(rand.NewSource(7))
	out := make([]route.Route, n)
	for i := range out {
		p := base.Clone()
		rng.Shuffle(len(p), func(a, b int) { p[a], p[b] = p[b], p[a] })
		out[i] = p
	}
	return out
}

// flatGain returns a 10×10 table with every off-diagonal gain equal to w.
func flatGain(w float64) *matrix.Dense {
	m, _ := matrix.NewDense(route.Locations, route.Locations)
	for i := 0; i < route.Locations; i++ {
		for j := 0; j < route.Locations; j++ {
			if i != j {
				_ = m.Set(i, j, w)
			}
		}
	}
	return m
}

// setGain sets the directed gain between two 1-based location codes.
func setGain(m *matrix.Dense, from, to route.Location, w float64) {
	_ = m.Set(int(from)-1, int(to)-1, w)
}
