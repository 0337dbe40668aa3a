// Package ga - crossover operators.
//
// Crossovers recombine the interiors of two parents. The engine does not trust
// their output: every child is repaired with route.FixPlaceholder and checked
// by route.IsValid before it is accepted, so an operator is free to produce
// routes that break the ordering or position rules (or, for UniformCrossover,
// duplicates).
//
// The permutation operators (cycle, PMX, OX1) work on expanded interiors: a
// Skip marker is read as SkipEligible, which gives both parents the same
// location set. Parents whose interiors are not permutations of each other
// are returned as clones.
package ga

import (
	"math/rand"

	"github.com/katalvlaran/georoute/route"
)

// Crossover recombines two parents into two children. Parents are never
// modified.
type Crossover interface {
	Name() string
	Crossover(rng *rand.Rand, p1, p2 route.Route) (route.Route, route.Route)
}

// CycleCrossover (CX) copies alternate position cycles from each parent.
// Every location keeps a position it held in one of the parents.
type CycleCrossover struct{}

// PMXCrossover exchanges a random segment and repairs the rest of each child
// through the segment's position mapping.
type PMXCrossover struct{}

// OrderCrossover (OX1) keeps a random segment of one parent and fills the
// remaining slots, starting after the segment, in the other parent's order.
type OrderCrossover struct{}

// UniformCrossover swaps each interior position between the parents with
// probability one half. It does not preserve permutations.
type UniformCrossover struct{}

var (
	_ Crossover = CycleCrossover{}
	_ Crossover = PMXCrossover{}
	_ Crossover = OrderCrossover{}
	_ Crossover = UniformCrossover{}
)

func (CycleCrossover) Name() string   { return "cycle" }
func (PMXCrossover) Name() string     { return "pmx" }
func (OrderCrossover) Name() string   { return "ox1" }
func (UniformCrossover) Name() string { return "uniform" }

// Crossover implements Crossover.
//
// Complexity: O(n) with n = interior length.
func (CycleCrossover) Crossover(_ *rand.Rand, p1, p2 route.Route) (route.Route, route.Route) {
	a, b, ok := permutationInteriors(p1, p2)
	if !ok {
		return p1.Clone(), p2.Clone()
	}
	n := len(a)
	pos := positions(a)
	c1 := make(route.Route, n)
	c2 := make(route.Route, n)
	done := make([]bool, n)

	var (
		cycle int
		i, j  int
	)
	for i = 0; i < n; i++ {
		if done[i] {
			continue
		}
		// Walk the cycle that starts at i; even cycles keep parent order,
		// odd cycles swap it.
		for j = i; !done[j]; j = pos[b[j]] {
			done[j] = true
			if cycle%2 == 0 {
				c1[j], c2[j] = a[j], b[j]
			} else {
				c1[j], c2[j] = b[j], a[j]
			}
		}
		cycle++
	}

	return route.WithEndpoints(c1), route.WithEndpoints(c2)
}

// Crossover implements Crossover.
//
// Complexity: O(n).
func (PMXCrossover) Crossover(rng *rand.Rand, p1, p2 route.Route) (route.Route, route.Route) {
	a, b, ok := permutationInteriors(p1, p2)
	if !ok || len(a) < 2 {
		return p1.Clone(), p2.Clone()
	}
	lo, hi := orderedPair(orDefault(rng), len(a))

	return route.WithEndpoints(pmxChild(a, b, lo, hi)), route.WithEndpoints(pmxChild(b, a, lo, hi))
}

// pmxChild takes seg = donor[lo..hi] and fills the remaining positions from
// other, following the segment mapping whenever a value is already taken.
func pmxChild(donor, other route.Route, lo, hi int) route.Route {
	n := len(donor)
	child := make(route.Route, n)
	inSeg := make(map[route.Location]int, hi-lo+1)

	var i int
	for i = lo; i <= hi; i++ {
		child[i] = donor[i]
		inSeg[donor[i]] = i
	}
	for i = 0; i < n; i++ {
		if i >= lo && i <= hi {
			continue
		}
		v := other[i]
		for {
			k, taken := inSeg[v]
			if !taken {
				break
			}
			v = other[k]
		}
		child[i] = v
	}

	return child
}

// Crossover implements Crossover.
//
// Complexity: O(n).
func (OrderCrossover) Crossover(rng *rand.Rand, p1, p2 route.Route) (route.Route, route.Route) {
	a, b, ok := permutationInteriors(p1, p2)
	if !ok || len(a) < 2 {
		return p1.Clone(), p2.Clone()
	}
	lo, hi := orderedPair(orDefault(rng), len(a))

	return route.WithEndpoints(ox1Child(a, b, lo, hi)), route.WithEndpoints(ox1Child(b, a, lo, hi))
}

// ox1Child keeps donor[lo..hi] and fills the other slots cyclically from
// hi+1 with the values of other, also read cyclically from hi+1.
func ox1Child(donor, other route.Route, lo, hi int) route.Route {
	n := len(donor)
	child := make(route.Route, n)
	kept := make(map[route.Location]bool, hi-lo+1)

	var i int
	for i = lo; i <= hi; i++ {
		child[i] = donor[i]
		kept[donor[i]] = true
	}
	w := (hi + 1) % n
	for i = 0; i < n; i++ {
		v := other[(hi+1+i)%n]
		if kept[v] {
			continue
		}
		child[w] = v
		w = (w + 1) % n
	}

	return child
}

// Crossover implements Crossover.
//
// Complexity: O(n).
func (UniformCrossover) Crossover(rng *rand.Rand, p1, p2 route.Route) (route.Route, route.Route) {
	a, b := expandedInterior(p1), expandedInterior(p2)
	if len(a) != len(b) {
		return p1.Clone(), p2.Clone()
	}
	rng = orDefault(rng)
	for i := range a {
		if rng.Intn(2) == 1 {
			a[i], b[i] = b[i], a[i]
		}
	}

	return route.WithEndpoints(a), route.WithEndpoints(b)
}

// expandedInterior copies the interior of r with Skip read as SkipEligible.
func expandedInterior(r route.Route) route.Route {
	in := route.Interior(r)
	for i, v := range in {
		if v == route.Skip {
			in[i] = route.SkipEligible
		}
	}

	return in
}

// permutationInteriors returns the expanded interiors of p1 and p2 when they
// hold the same distinct locations.
func permutationInteriors(p1, p2 route.Route) (route.Route, route.Route, bool) {
	a, b := expandedInterior(p1), expandedInterior(p2)
	if len(a) != len(b) {
		return nil, nil, false
	}
	var count [route.Locations + 1]int
	for i := range a {
		if a[i] < route.Skip || a[i] > route.Locations || b[i] < route.Skip || b[i] > route.Locations {
			return nil, nil, false
		}
		count[a[i]]++
		count[b[i]]--
	}
	for i := range a {
		if count[a[i]] != 0 || count[b[i]] != 0 {
			return nil, nil, false
		}
	}
	seen := make(map[route.Location]bool, len(a))
	for _, v := range a {
		if seen[v] {
			return nil, nil, false
		}
		seen[v] = true
	}

	return a, b, true
}

// positions maps every value of a to its index.
func positions(a route.Route) map[route.Location]int {
	pos := make(map[route.Location]int, len(a))
	for i, v := range a {
		pos[v] = i
	}

	return pos
}
