package ga_test

import (
	"testing"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_ValidAndDeterministic(t *testing.T) {
	a, err := ga.Initialize(seeded(12), 50)
	require.NoError(t, err)
	require.Len(t, a, 50)
	for _, r := range a {
		require.NoError(t, route.Check(r))
		assert.Equal(t, allInterior, sortedInterior(r))
	}

	b, err := ga.Initialize(seeded(12), 50)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestInitialize_Size(t *testing.T) {
	_, err := ga.Initialize(nil, 0)
	require.ErrorIs(t, err, ga.ErrPopulationTooSmall)

	pop, err := ga.Initialize(nil, 1)
	require.NoError(t, err)
	assert.Len(t, pop, 1)
}

func TestEvaluatePopulation_AdoptsCompactEncoding(t *testing.T) {
	m := constGain(t, 1)
	// 3→5 beats 3→7→5, so the first route gets the marker.
	require.NoError(t, m.Set(2, 4, 10))

	pop := ga.Population{
		route.FromInts(1, 2, 3, 7, 5, 4, 9, 8, 6, 10, 1),
		route.FromInts(1, 9, 6, 3, 5, 7, 2, 10, 8, 4, 1),
	}
	fit, err := ga.EvaluatePopulation(pop, m)
	require.NoError(t, err)
	require.Len(t, fit, 2)

	assert.Equal(t, route.FromInts(1, 2, 3, 0, 5, 4, 9, 8, 6, 10, 1), pop[0])
	assert.InDelta(t, 18.0, fit[0], 1e-9)
	assert.Equal(t, route.FromInts(1, 9, 6, 3, 5, 7, 2, 10, 8, 4, 1), pop[1])
	assert.InDelta(t, 19.0, fit[1], 1e-9) // nine unit edges plus 3→5
}

func TestEvaluatePopulation_ReportsIndividual(t *testing.T) {
	pop := ga.Population{route.FromInts(1, 2, 1)}
	_, err := ga.EvaluatePopulation(pop, constGain(t, 1))
	require.ErrorIs(t, err, route.ErrBadLength)
	assert.Contains(t, err.Error(), "individual 0")
}
