package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/georoute/ga"
)

// Combination is one point of a Grid.
type Combination struct {
	Selector       string  `json:"selector" yaml:"selector"`
	Crossover      string  `json:"crossover" yaml:"crossover"`
	Mutator        string  `json:"mutator" yaml:"mutator"`
	PopulationSize int     `json:"population_size" yaml:"population_size"`
	Generations    int     `json:"generations" yaml:"generations"`
	CrossoverProb  float64 `json:"crossover_prob" yaml:"crossover_prob"`
	MutationProb   float64 `json:"mutation_prob" yaml:"mutation_prob"`
	Elitism        bool    `json:"elitism" yaml:"elitism"`
	Seed           int64   `json:"seed" yaml:"seed"`
}

// String is a compact, stable label, also used to derive Stats.ID.
func (c Combination) String() string {
	return fmt.Sprintf("%s/%s/%s pop=%d gens=%d pxo=%g pm=%g elitism=%t seed=%d",
		c.Selector, c.Crossover, c.Mutator, c.PopulationSize, c.Generations,
		c.CrossoverProb, c.MutationProb, c.Elitism, c.Seed)
}

// Options resolves the strategy names and returns ga.Options for c with
// EliteMax and the default retry limits.
func (c Combination) Options() (ga.Options, error) {
	sel, err := ga.SelectorByName(c.Selector)
	if err != nil {
		return ga.Options{}, err
	}
	xo, err := ga.CrossoverByName(c.Crossover)
	if err != nil {
		return ga.Options{}, err
	}
	mut, err := ga.MutatorByName(c.Mutator)
	if err != nil {
		return ga.Options{}, err
	}

	opts := ga.DefaultOptions()
	opts.Selector, opts.Crossover, opts.Mutator = sel, xo, mut
	opts.PopulationSize = c.PopulationSize
	opts.Generations = c.Generations
	opts.CrossoverProb = c.CrossoverProb
	opts.MutationProb = c.MutationProb
	opts.Elitism = c.Elitism
	opts.Seed = c.Seed

	return opts, nil
}

// Grid lists candidate values per parameter. Combinations is their cross
// product; an empty list yields no combinations. Environment overrides use
// comma-separated lists.
type Grid struct {
	Selectors       []string  `yaml:"selectors" env:"SELECTORS" validate:"required,min=1"`
	Crossovers      []string  `yaml:"crossovers" env:"CROSSOVERS" validate:"required,min=1"`
	Mutators        []string  `yaml:"mutators" env:"MUTATORS" validate:"required,min=1"`
	PopulationSizes []int     `yaml:"population_sizes" env:"POPULATION_SIZES" validate:"required,min=1,dive,gte=2"`
	Generations     []int     `yaml:"generations" env:"GENERATIONS" validate:"required,min=1,dive,gte=0"`
	CrossoverProbs  []float64 `yaml:"crossover_probs" env:"CROSSOVER_PROBS" validate:"required,min=1,dive,gte=0,lte=1"`
	MutationProbs   []float64 `yaml:"mutation_probs" env:"MUTATION_PROBS" validate:"required,min=1,dive,gte=0,lte=1"`
	Elitism         []bool    `yaml:"elitism" env:"ELITISM" validate:"required,min=1"`
	Seeds           []int64   `yaml:"seeds" env:"SEEDS" validate:"required,min=1"`
}

// DefaultGrid is the full operator/parameter sweep: 5 selectors × 4
// crossovers × 5 mutators × 3 sizes × 3 lengths × 2 × 2 × 2, seed 12.
func DefaultGrid() Grid {
	return Grid{
		Selectors:       ga.SelectorNames(),
		Crossovers:      ga.CrossoverNames(),
		Mutators:        ga.MutatorNames(),
		PopulationSizes: []int{50, 100, 150},
		Generations:     []int{5, 15, 20},
		CrossoverProbs:  []float64{0.8, 0.9},
		MutationProbs:   []float64{0.2, 0.1},
		Elitism:         []bool{true, false},
		Seeds:           []int64{12},
	}
}

// Size returns the number of combinations.
func (g Grid) Size() int {
	return len(g.Selectors) * len(g.Crossovers) * len(g.Mutators) *
		len(g.PopulationSizes) * len(g.Generations) *
		len(g.CrossoverProbs) * len(g.MutationProbs) *
		len(g.Elitism) * len(g.Seeds)
}

// Combinations returns the cross product in field order, the last field
// varying fastest.
//
// Complexity: O(Size).
func (g Grid) Combinations() []Combination {
	out := make([]Combination, 0, g.Size())
	for _, sel := range g.Selectors {
		for _, xo := range g.Crossovers {
			for _, mut := range g.Mutators {
				for _, pop := range g.PopulationSizes {
					for _, gens := range g.Generations {
						for _, pxo := range g.CrossoverProbs {
							for _, pm := range g.MutationProbs {
								for _, el := range g.Elitism {
									for _, seed := range g.Seeds {
										out = append(out, Combination{
											Selector:       sel,
											Crossover:      xo,
											Mutator:        mut,
											PopulationSize: pop,
											Generations:    gens,
											CrossoverProb:  pxo,
											MutationProb:   pm,
											Elitism:        el,
											Seed:           seed,
										})
									}
								}
							}
						}
					}
				}
			}
		}
	}

	return out
}
