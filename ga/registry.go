package ga

import (
	"fmt"
	"sort"
)

// Strategy tables used by configuration-driven callers (config, gridsearch,
// the CLI). Keys are the Name() of each strategy.
var (
	selectors = map[string]Selector{
		Roulette{}.Name():        Roulette{},
		Ranking{}.Name():         Ranking{},
		Tournament{}.Name():      Tournament{Size: DefaultTournamentSize},
		ExponentialRank{}.Name(): ExponentialRank{Rate: DefaultExponentialRate},
		LinearRank{}.Name():      LinearRank{},
	}

	crossovers = map[string]Crossover{
		CycleCrossover{}.Name():   CycleCrossover{},
		PMXCrossover{}.Name():     PMXCrossover{},
		OrderCrossover{}.Name():   OrderCrossover{},
		UniformCrossover{}.Name(): UniformCrossover{},
	}

	mutators = map[string]Mutator{
		Swap{}.Name():         Swap{},
		Inversion{}.Name():    Inversion{},
		Scramble{}.Name():     Scramble{},
		Insertion{}.Name():    Insertion{},
		Displacement{}.Name(): Displacement{},
	}
)

// SelectorByName returns the selector registered under name.
func SelectorByName(name string) (Selector, error) {
	if s, ok := selectors[name]; ok {
		return s, nil
	}

	return nil, fmt.Errorf("selector %q: %w", name, ErrUnknownStrategy)
}

// CrossoverByName returns the crossover registered under name.
func CrossoverByName(name string) (Crossover, error) {
	if c, ok := crossovers[name]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("crossover %q: %w", name, ErrUnknownStrategy)
}

// MutatorByName returns the mutator registered under name.
func MutatorByName(name string) (Mutator, error) {
	if m, ok := mutators[name]; ok {
		return m, nil
	}

	return nil, fmt.Errorf("mutator %q: %w", name, ErrUnknownStrategy)
}

// SelectorNames lists registered selector names in sorted order.
func SelectorNames() []string { return sortedKeys(selectors) }

// CrossoverNames lists registered crossover names in sorted order.
func CrossoverNames() []string { return sortedKeys(crossovers) }

// MutatorNames lists registered mutator names in sorted order.
func MutatorNames() []string { return sortedKeys(mutators) }

func sortedKeys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
