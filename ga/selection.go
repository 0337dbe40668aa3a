// Package ga - selection operators.
//
// Every Selector maps (population, fitness) to one parent for maximization.
// The returned route is the population's own slice, not a copy; callers that
// modify it must clone first.
//
// Weight-based selectors share weightedIndex: negative weights get zero
// probability; NaN/Inf weights and a non-positive total fail with
// ErrInvalidSelectionWeights.
package ga

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/georoute/route"
)

const (
	// DefaultTournamentSize is used when Tournament.Size <= 0.
	DefaultTournamentSize = 3
	// DefaultExponentialRate is used when ExponentialRank.Rate <= 0.
	DefaultExponentialRate = 0.1
)

// Selector picks one parent from a population.
type Selector interface {
	Name() string
	Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error)
}

// Roulette selects with probability proportional to raw fitness. Individuals
// with negative fitness are never picked; the population total must be positive.
type Roulette struct{}

// Ranking sorts ascending, assigns ranks 1..N (N = best) and spins a roulette
// over the ranks.
type Ranking struct{}

// Tournament samples Size distinct individuals and returns the fittest.
// Populations smaller than Size use every individual.
type Tournament struct{ Size int }

// ExponentialRank sorts descending and weights rank k (1 = best) by exp(-Rate·k).
type ExponentialRank struct{ Rate float64 }

// LinearRank sorts descending and weights 0-based rank i by (N−i)/(N(N+1)/2).
type LinearRank struct{}

var (
	_ Selector = Roulette{}
	_ Selector = Ranking{}
	_ Selector = Tournament{}
	_ Selector = ExponentialRank{}
	_ Selector = LinearRank{}
)

func (Roulette) Name() string        { return "roulette" }
func (Ranking) Name() string         { return "ranking" }
func (Tournament) Name() string      { return "tournament" }
func (ExponentialRank) Name() string { return "exponential_rank" }
func (LinearRank) Name() string      { return "linear_rank" }

// Select implements Selector.
func (Roulette) Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error) {
	if err := checkSelectionInput(pop, fit); err != nil {
		return nil, err
	}
	i, err := weightedIndex(orDefault(rng), fit)
	if err != nil {
		return nil, err
	}

	return pop[i], nil
}

// Select implements Selector.
func (Ranking) Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error) {
	if err := checkSelectionInput(pop, fit); err != nil {
		return nil, err
	}
	order := sortedIndices(fit, false)
	ranks := make([]float64, len(order))
	for i := range ranks {
		ranks[i] = float64(i + 1)
	}
	k, err := weightedIndex(orDefault(rng), ranks)
	if err != nil {
		return nil, err
	}

	return pop[order[k]], nil
}

// Select implements Selector.
func (t Tournament) Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error) {
	if err := checkSelectionInput(pop, fit); err != nil {
		return nil, err
	}
	size := t.Size
	if size <= 0 {
		size = DefaultTournamentSize
	}

	var (
		pool = sampleDistinct(orDefault(rng), len(pop), size)
		best = pool[0]
	)
	for _, i := range pool[1:] {
		if fit[i] > fit[best] {
			best = i
		}
	}

	return pop[best], nil
}

// Select implements Selector.
func (e ExponentialRank) Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error) {
	if err := checkSelectionInput(pop, fit); err != nil {
		return nil, err
	}
	rate := e.Rate
	if rate <= 0 {
		rate = DefaultExponentialRate
	}
	order := sortedIndices(fit, true)
	w := make([]float64, len(order))
	for i := range w {
		w[i] = math.Exp(-rate * float64(i+1))
	}
	k, err := weightedIndex(orDefault(rng), w)
	if err != nil {
		return nil, err
	}

	return pop[order[k]], nil
}

// Select implements Selector.
func (LinearRank) Select(rng *rand.Rand, pop Population, fit []float64) (route.Route, error) {
	if err := checkSelectionInput(pop, fit); err != nil {
		return nil, err
	}
	var (
		order = sortedIndices(fit, true)
		n     = float64(len(order))
		total = n * (n + 1) / 2
		w     = make([]float64, len(order))
	)
	for i := range w {
		w[i] = (n - float64(i)) / total
	}
	k, err := weightedIndex(orDefault(rng), w)
	if err != nil {
		return nil, err
	}

	return pop[order[k]], nil
}

func checkSelectionInput(pop Population, fit []float64) error {
	if len(pop) == 0 {
		return ErrEmptyPopulation
	}
	if len(pop) != len(fit) {
		return fmt.Errorf("pop=%d fit=%d: %w", len(pop), len(fit), ErrFitnessMismatch)
	}

	return nil
}

// sortedIndices returns indices of fit ordered by fitness; ties keep their
// original order.
func sortedIndices(fit []float64, descending bool) []int {
	idx := make([]int, len(fit))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return fit[idx[a]] > fit[idx[b]]
		}
		return fit[idx[a]] < fit[idx[b]]
	})

	return idx
}

// weightedIndex draws index i with probability max(w[i],0)/Σmax(w,0).
// Negative weights are never drawn. The raw total Σw must be positive.
//
// Complexity: O(n).
func weightedIndex(rng *rand.Rand, w []float64) (int, error) {
	var total float64
	for i, x := range w {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("weight[%d]=%g: %w", i, x, ErrInvalidSelectionWeights)
		}
		total += x
	}
	if !(total > 0) {
		return 0, fmt.Errorf("total=%g: %w", total, ErrInvalidSelectionWeights)
	}

	var mass float64
	for _, x := range w {
		mass += max(x, 0)
	}

	var (
		target = rng.Float64() * mass
		cum    float64
		last   int
	)
	for i, x := range w {
		if x <= 0 {
			continue
		}
		cum += x
		last = i
		if target < cum {
			return i, nil
		}
	}

	// Floating-point shortfall: fall back to the last positive weight.
	return last, nil
}
