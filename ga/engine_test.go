package ga_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RequiresEliteFunc(t *testing.T) {
	opts := smallOptions(1)
	opts.Elite = nil
	opts.PopulationSize = 0 // still reported as the missing elite function

	_, err := ga.Run(context.Background(), testGain(t), opts)
	require.ErrorIs(t, err, ga.ErrNoEliteFunc)
}

func TestRun_OptionErrors(t *testing.T) {
	cases := []struct {
		name string
		edit func(*ga.Options)
		want error
	}{
		{"population", func(o *ga.Options) { o.PopulationSize = 1 }, ga.ErrPopulationTooSmall},
		{"generations", func(o *ga.Options) { o.Generations = -1 }, ga.ErrInvalidGenerations},
		{"crossover prob", func(o *ga.Options) { o.CrossoverProb = 1.5 }, ga.ErrInvalidProbability},
		{"mutation prob", func(o *ga.Options) { o.MutationProb = -0.1 }, ga.ErrInvalidProbability},
		{"selector", func(o *ga.Options) { o.Selector = nil }, ga.ErrNoSelector},
		{"crossover", func(o *ga.Options) { o.Crossover = nil }, ga.ErrNoCrossover},
		{"mutator", func(o *ga.Options) { o.Mutator = nil }, ga.ErrNoMutator},
		{"attempts", func(o *ga.Options) { o.MaxOffspringAttempts = 0 }, ga.ErrInvalidBudget},
		{"retries", func(o *ga.Options) { o.MaxParentRetries = -1 }, ga.ErrInvalidBudget},
		{"rounds", func(o *ga.Options) { o.MaxBreedingRounds = 3 }, ga.ErrInvalidBudget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := smallOptions(1)
			tc.edit(&opts)
			_, err := ga.Run(context.Background(), testGain(t), opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRun_RejectsBadMatrix(t *testing.T) {
	small, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = ga.Run(context.Background(), small, smallOptions(1))
	require.ErrorIs(t, err, route.ErrGainMatrix)
}

func TestRun_ResultShape(t *testing.T) {
	opts := smallOptions(3)
	res, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)

	require.NoError(t, route.Check(res.Best))
	assert.Len(t, res.Population, opts.PopulationSize)
	assert.Len(t, res.Fitness, opts.PopulationSize)
	assert.Len(t, res.History.Fitness, opts.Generations+1)
	assert.Len(t, res.History.Elites, opts.Generations+1)
	assert.Equal(t, opts.Generations, res.Generations)
	for _, r := range res.Population {
		require.True(t, route.IsValid(r), "%v", r)
	}

	ev, err := route.Analyze(res.Best, testGain(t))
	require.NoError(t, err)
	assert.InDelta(t, res.BestFitness, ev.Gain, 1e-9)
	assert.Equal(t, res.BestFitness, res.History.Fitness[opts.Generations])
	assert.Positive(t, res.Stats.Rounds)
	assert.GreaterOrEqual(t, res.Stats.Attempts, res.Stats.Rounds)
}

func TestRun_SameSeedSameResult(t *testing.T) {
	opts := smallOptions(12)
	a, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)
	b, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.History, b.History)
	assert.Equal(t, a.Population, b.Population)
}

func TestRun_ElitismNeverLosesFitness(t *testing.T) {
	strategies := []struct {
		sel ga.Selector
		x   ga.Crossover
		m   ga.Mutator
	}{
		{ga.Roulette{}, ga.CycleCrossover{}, ga.Displacement{}},
		{ga.Tournament{Size: 3}, ga.PMXCrossover{}, ga.Swap{}},
		{ga.LinearRank{}, ga.UniformCrossover{}, ga.Inversion{}},
		{ga.ExponentialRank{}, ga.OrderCrossover{}, ga.Scramble{}},
		{ga.Ranking{}, ga.CycleCrossover{}, ga.Insertion{}},
	}
	for seed := int64(1); seed <= 5; seed++ {
		for _, s := range strategies {
			opts := smallOptions(seed)
			opts.Selector, opts.Crossover, opts.Mutator = s.sel, s.x, s.m
			opts.MutationProb = 0.5
			res, err := ga.Run(context.Background(), testGain(t), opts)
			require.NoError(t, err)

			h := res.History.Fitness
			for g := 1; g < len(h); g++ {
				require.GreaterOrEqual(t, h[g], h[g-1],
					"seed %d %s/%s/%s generation %d", seed, s.sel.Name(), s.x.Name(), s.m.Name(), g)
			}
		}
	}
}

func TestRun_OddPopulation(t *testing.T) {
	opts := smallOptions(4)
	opts.PopulationSize = 7
	res, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)
	assert.Len(t, res.Population, 7)
}

func TestRun_ZeroGenerations(t *testing.T) {
	opts := smallOptions(4)
	opts.Generations = 0
	res, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)
	assert.Len(t, res.History.Fitness, 1)
	assert.Zero(t, res.Stats.Rounds)
}

// brokenCrossover always returns routes the validator rejects.
type brokenCrossover struct{}

func (brokenCrossover) Name() string { return "broken" }
func (brokenCrossover) Crossover(_ *rand.Rand, _, _ route.Route) (route.Route, route.Route) {
	return route.FromInts(1, 1), route.FromInts(1, 1)
}

func TestRun_BreedingStalls(t *testing.T) {
	opts := smallOptions(1)
	opts.Crossover = brokenCrossover{}
	opts.CrossoverProb = 1
	opts.MaxOffspringAttempts = 3
	opts.MaxBreedingRounds = opts.PopulationSize / 2

	_, err := ga.Run(context.Background(), testGain(t), opts)
	require.ErrorIs(t, err, ga.ErrBreedingStalled)
}

func TestRun_SinkReceivesEveryGeneration(t *testing.T) {
	var got []ga.GenerationRecord
	opts := smallOptions(9)
	opts.Sink = ga.SinkFunc(func(rec ga.GenerationRecord) error {
		got = append(got, rec)
		return nil
	})

	res, err := ga.Run(context.Background(), testGain(t), opts)
	require.NoError(t, err)
	require.Len(t, got, opts.Generations+1)
	for g, rec := range got {
		assert.Equal(t, g, rec.Generation)
		assert.Equal(t, opts.Seed, rec.Seed)
		assert.Equal(t, res.History.Fitness[g], rec.Fitness)
		assert.Equal(t, res.History.Elites[g], rec.Route)
	}
}

func TestRun_SinkError(t *testing.T) {
	boom := errors.New("disk full")
	opts := smallOptions(9)
	opts.Sink = ga.SinkFunc(func(rec ga.GenerationRecord) error {
		if rec.Generation == 2 {
			return boom
		}
		return nil
	})

	_, err := ga.Run(context.Background(), testGain(t), opts)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "generation 2")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ga.Run(ctx, testGain(t), smallOptions(1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_RouletteNeedsPositiveFitness(t *testing.T) {
	opts := smallOptions(1)
	_, err := ga.Run(context.Background(), constGain(t, -1), opts)
	require.ErrorIs(t, err, ga.ErrInvalidSelectionWeights)

	opts.Selector = ga.Ranking{}
	_, err = ga.Run(context.Background(), constGain(t, -1), opts)
	require.NoError(t, err)
}

func TestRun_RouletteIgnoresNegativeRoutes(t *testing.T) {
	// Leaving location 2 for 3..6 costs 200, so those routes total -110.
	gain := constGain(t, 10)
	for j := 2; j <= 5; j++ {
		require.NoError(t, gain.Set(1, j, -200))
	}
	g, err := route.PathGain(route.FromInts(1, 2, 3, 4, 5, 7, 6, 8, 9, 10, 1), gain)
	require.NoError(t, err)
	require.Equal(t, -110.0, g)

	for seed := int64(1); seed <= 5; seed++ {
		res, err := ga.Run(context.Background(), gain, smallOptions(seed))
		require.NoError(t, err)
		assert.Equal(t, 100.0, res.BestFitness)
	}
}

func TestRun_CustomInitializer(t *testing.T) {
	opts := smallOptions(1)
	opts.Initializer = func(_ *rand.Rand, size int) (ga.Population, error) {
		return make(ga.Population, size-1), nil
	}
	_, err := ga.Run(context.Background(), testGain(t), opts)
	require.ErrorIs(t, err, ga.ErrPopulationTooSmall)

	opts.Initializer = func(_ *rand.Rand, size int) (ga.Population, error) {
		pop := make(ga.Population, size)
		for i := range pop {
			pop[i] = route.FromInts(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 1)
		}
		return pop, nil
	}
	_, err = ga.Run(context.Background(), testGain(t), opts)
	require.ErrorIs(t, err, route.ErrOrdering)
}
