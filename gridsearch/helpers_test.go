package gridsearch_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// countingSink counts records from concurrent runs.
type countingSink struct{ n *int64 }

func (s *countingSink) WriteGeneration(ga.GenerationRecord) error {
	atomic.AddInt64(s.n, 1)
	return nil
}

func (s *countingSink) load() int64 { return atomic.LoadInt64(s.n) }

// mixedGain returns a table where every edge gains 100 except the edges from
// Forgotten Crossroads (2) to locations 3..6, which lose 1000. Routes that
// take one of those edges total -100, all others 1000.
func mixedGain(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(route.Locations, route.Locations)
	require.NoError(t, err)
	for i := 0; i < route.Locations; i++ {
		for j := 0; j < route.Locations; j++ {
			if i == j {
				continue
			}
			w := 100.0
			if i == 1 && j >= 2 && j <= 5 {
				w = -1000
			}
			require.NoError(t, m.Set(i, j, w))
		}
	}
	return m
}
