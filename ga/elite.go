package ga

import (
	"math"
	"sort"

	"github.com/katalvlaran/georoute/route"
)

// EliteFunc extracts the best individual of a population and its fitness.
// Run requires one; see ErrNoEliteFunc.
type EliteFunc func(pop Population, fit []float64) (route.Route, float64)

// EliteMax returns the first individual with the highest fitness. The route
// is the population's own slice. Empty input yields (nil, -Inf).
//
// Complexity: O(N).
func EliteMax(pop Population, fit []float64) (route.Route, float64) {
	n := min(len(pop), len(fit))
	if n == 0 {
		return nil, math.Inf(-1)
	}
	best := 0
	for i := 1; i < n; i++ {
		if fit[i] > fit[best] {
			best = i
		}
	}

	return pop[best], fit[best]
}

// NElites returns a function selecting the n fittest individuals. The result
// is ordered like the tail of an ascending stable argsort: the best
// individual comes last, and equal fitness keeps population order.
// n is clamped to [0, N].
//
// Complexity: O(N log N).
func NElites(n int) func(pop Population, fit []float64) (Population, []float64) {
	return func(pop Population, fit []float64) (Population, []float64) {
		size := min(len(pop), len(fit))
		k := max(0, min(n, size))
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return fit[idx[a]] < fit[idx[b]] })

		top := idx[size-k:]
		outPop := make(Population, k)
		outFit := make([]float64, k)
		for i, j := range top {
			outPop[i] = pop[j]
			outFit[i] = fit[j]
		}

		return outPop, outFit
	}
}
