// Package ga - mutation operators.
//
// Every Mutator follows the same frame:
//  1. copy the interior of the route (fixed start/end removed);
//  2. with probability pm apply one structural change;
//  3. restore the endpoints and run route.FixPlaceholder.
//
// The input route is never modified. Interiors shorter than two elements are
// returned unchanged (apart from the copy).
package ga

import (
	"math/rand"

	"github.com/katalvlaran/georoute/route"
)

// Mutator applies one structural change to a route with probability pm.
type Mutator interface {
	Name() string
	Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route
}

// Swap exchanges two interior positions.
type Swap struct{}

// Inversion reverses a contiguous interior span of at least two elements.
type Inversion struct{}

// Scramble shuffles a contiguous interior span of at least two elements.
type Scramble struct{}

// Insertion moves one interior element to a different position.
type Insertion struct{}

// Displacement moves a contiguous interior block, order preserved, to a
// different position.
type Displacement struct{}

var (
	_ Mutator = Swap{}
	_ Mutator = Inversion{}
	_ Mutator = Scramble{}
	_ Mutator = Insertion{}
	_ Mutator = Displacement{}
)

func (Swap) Name() string         { return "swap" }
func (Inversion) Name() string    { return "inversion" }
func (Scramble) Name() string     { return "scramble" }
func (Insertion) Name() string    { return "insertion" }
func (Displacement) Name() string { return "displacement" }

// Mutate implements Mutator.
func (Swap) Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route {
	return mutateInterior(rng, r, pm, func(rng *rand.Rand, in route.Route) route.Route {
		i, j := orderedPair(rng, len(in))
		in[i], in[j] = in[j], in[i]
		return in
	})
}

// Mutate implements Mutator.
func (Inversion) Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route {
	return mutateInterior(rng, r, pm, func(rng *rand.Rand, in route.Route) route.Route {
		i, k := orderedPair(rng, len(in))
		reverseSpan(in, i, k)
		return in
	})
}

// Mutate implements Mutator.
func (Scramble) Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route {
	return mutateInterior(rng, r, pm, func(rng *rand.Rand, in route.Route) route.Route {
		i, k := orderedPair(rng, len(in))
		shuffleInPlace(in[i:k+1], rng)
		return in
	})
}

// Mutate implements Mutator.
func (Insertion) Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route {
	return mutateInterior(rng, r, pm, func(rng *rand.Rand, in route.Route) route.Route {
		from, to := orderedPair(rng, len(in))
		if rng.Intn(2) == 1 {
			from, to = to, from
		}
		return moveBlock(in, from, from+1, to)
	})
}

// Mutate implements Mutator.
func (Displacement) Mutate(rng *rand.Rand, r route.Route, pm float64) route.Route {
	return mutateInterior(rng, r, pm, func(rng *rand.Rand, in route.Route) route.Route {
		n := len(in)
		// Block [start, end) leaves at least one element outside it so there
		// is somewhere else to put it.
		size := 1 + rng.Intn(n-1)
		start := rng.Intn(n - size + 1)
		// n-size+1 insertion points exist in the remainder; skip the original one.
		at := rng.Intn(n - size)
		if at >= start {
			at++
		}
		return moveBlock(in, start, start+size, at)
	})
}

// mutateInterior is the shared copy → maybe-change → restore → repair frame.
func mutateInterior(rng *rand.Rand, r route.Route, pm float64, op func(*rand.Rand, route.Route) route.Route) route.Route {
	rng = orDefault(rng)
	in := route.Interior(r)
	if len(in) >= 2 && rng.Float64() < pm {
		in = op(rng, in)
	}

	return route.FixPlaceholder(route.WithEndpoints(in))
}

// reverseSpan reverses the inclusive segment a[i..k] in place.
func reverseSpan(a route.Route, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}

// moveBlock removes a[start:end] and reinserts it so that it begins at index
// at of the resulting slice. 0 <= at <= len(a)-(end-start).
//
// Complexity: O(n) time and space.
func moveBlock(a route.Route, start, end, at int) route.Route {
	block := a[start:end].Clone()
	rest := make(route.Route, 0, len(a)-len(block))
	rest = append(rest, a[:start]...)
	rest = append(rest, a[end:]...)

	out := make(route.Route, 0, len(a))
	out = append(out, rest[:at]...)
	out = append(out, block...)

	return append(out, rest[at:]...)
}
