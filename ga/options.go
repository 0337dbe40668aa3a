package ga

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultPopulationSize etc. are the parameters of the reference run.
	DefaultPopulationSize = 150
	DefaultGenerations    = 15
	DefaultCrossoverProb  = 0.8
	DefaultMutationProb   = 0.1

	// DefaultMaxParentRetries bounds re-selection of both parents while
	// they are the same route.
	DefaultMaxParentRetries = 10
	// DefaultMaxOffspringAttempts bounds crossover+mutation attempts per
	// parent pair before new parents are selected.
	DefaultMaxOffspringAttempts = 40
	// breedingRoundsPerIndividual sizes the automatic stall budget.
	breedingRoundsPerIndividual = 50
)

// Options configures Run.
//
// PopulationSize       – individuals per generation (≥ MinPopulationSize; odd sizes are allowed).
// Generations          – breeding cycles after generation 0 (≥ 0).
// CrossoverProb        – probability of recombining a parent pair instead of cloning it, in [0,1].
// MutationProb         – probability passed to Mutator.Mutate for each child, in [0,1].
// Selector, Crossover,
// Mutator              – pluggable strategies (required).
// Elite                – elite extraction (required; nil ⇒ ErrNoEliteFunc).
// Elitism              – overwrite the last offspring slot with the previous elite.
// Seed                 – RNG seed; 0 ⇒ fixed default seed.
// MaxParentRetries     – distinct-parent re-selections before accepting a duplicate pair.
// MaxOffspringAttempts – offspring attempts per parent pair.
// MaxBreedingRounds    – parent pairs per generation before ErrBreedingStalled; 0 ⇒ 50·PopulationSize.
// Initializer          – generation-0 builder; nil ⇒ Initialize.
// Sink                 – per-generation log; nil disables logging.
// Logger               – structured debug logging; nil ⇒ discard.
type Options struct {
	PopulationSize int
	Generations    int
	CrossoverProb  float64
	MutationProb   float64

	Selector  Selector
	Crossover Crossover
	Mutator   Mutator
	Elite     EliteFunc
	Elitism   bool

	Seed int64

	MaxParentRetries     int
	MaxOffspringAttempts int
	MaxBreedingRounds    int

	Initializer Initializer
	Sink        Sink
	Logger      *slog.Logger
}

// DefaultOptions returns the reference configuration.
//
// Defaults:
//   - PopulationSize: 150, Generations: 15.
//   - CrossoverProb: 0.8, MutationProb: 0.1.
//   - Roulette selection, cycle crossover, displacement mutation.
//   - EliteMax with elitism enabled.
//   - Seed 0 (default stream), retry limits 10/40, automatic stall budget.
func DefaultOptions() Options {
	return Options{
		PopulationSize:       DefaultPopulationSize,
		Generations:          DefaultGenerations,
		CrossoverProb:        DefaultCrossoverProb,
		MutationProb:         DefaultMutationProb,
		Selector:             Roulette{},
		Crossover:            CycleCrossover{},
		Mutator:              Displacement{},
		Elite:                EliteMax,
		Elitism:              true,
		MaxParentRetries:     DefaultMaxParentRetries,
		MaxOffspringAttempts: DefaultMaxOffspringAttempts,
	}
}

// breedingBudget resolves MaxBreedingRounds.
func (o Options) breedingBudget() int {
	if o.MaxBreedingRounds == 0 {
		return breedingRoundsPerIndividual * o.PopulationSize
	}

	return o.MaxBreedingRounds
}

// validateOptions checks Options without touching the gain matrix.
// Elite is checked by Run before this.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.PopulationSize < MinPopulationSize {
		return fmt.Errorf("population size %d < %d: %w", o.PopulationSize, MinPopulationSize, ErrPopulationTooSmall)
	}
	if o.Generations < 0 {
		return fmt.Errorf("generations=%d: %w", o.Generations, ErrInvalidGenerations)
	}
	if !(o.CrossoverProb >= 0 && o.CrossoverProb <= 1) {
		return fmt.Errorf("crossover probability %v: %w", o.CrossoverProb, ErrInvalidProbability)
	}
	if !(o.MutationProb >= 0 && o.MutationProb <= 1) {
		return fmt.Errorf("mutation probability %v: %w", o.MutationProb, ErrInvalidProbability)
	}
	if o.Selector == nil {
		return ErrNoSelector
	}
	if o.Crossover == nil {
		return ErrNoCrossover
	}
	if o.Mutator == nil {
		return ErrNoMutator
	}
	if o.MaxParentRetries < 0 || o.MaxOffspringAttempts < 1 {
		return fmt.Errorf("parent retries=%d, offspring attempts=%d: %w",
			o.MaxParentRetries, o.MaxOffspringAttempts, ErrInvalidBudget)
	}
	// Every round yields at most one pair.
	if need := (o.PopulationSize + 1) / 2; o.MaxBreedingRounds < 0 || o.breedingBudget() < need {
		return fmt.Errorf("breeding rounds=%d, need at least %d: %w", o.MaxBreedingRounds, need, ErrInvalidBudget)
	}

	return nil
}
