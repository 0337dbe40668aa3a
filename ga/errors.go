// Package ga: sentinel error set.
//
// Callers MUST use errors.Is to branch on these; Run wraps them with
// generation context via %w.
package ga

import "errors"

var (
	// ErrNoEliteFunc is returned by Run when Options.Elite is nil. It is a
	// configuration error and is checked before anything else.
	ErrNoEliteFunc = errors.New("ga: elite function is required")

	// ErrNoSelector, ErrNoCrossover and ErrNoMutator report a missing strategy.
	ErrNoSelector  = errors.New("ga: selector is required")
	ErrNoCrossover = errors.New("ga: crossover is required")
	ErrNoMutator   = errors.New("ga: mutator is required")

	// ErrPopulationTooSmall is returned for population sizes below MinPopulationSize.
	ErrPopulationTooSmall = errors.New("ga: population too small")

	// ErrInvalidGenerations is returned for a negative generation count.
	ErrInvalidGenerations = errors.New("ga: generations must be >= 0")

	// ErrInvalidProbability is returned for probabilities outside [0,1].
	ErrInvalidProbability = errors.New("ga: probability out of range")

	// ErrInvalidBudget is returned for non-positive retry limits or a
	// breeding budget too small to ever fill a population.
	ErrInvalidBudget = errors.New("ga: invalid retry budget")

	// ErrBreedingStalled is returned when a generation exhausts its breeding
	// budget without producing a full offspring population.
	ErrBreedingStalled = errors.New("ga: breeding stalled")

	// ErrEmptyPopulation is returned by selectors given no individuals.
	ErrEmptyPopulation = errors.New("ga: empty population")

	// ErrFitnessMismatch is returned when len(fitness) != len(population).
	ErrFitnessMismatch = errors.New("ga: fitness/population length mismatch")

	// ErrInvalidSelectionWeights is returned by weight-proportional selection
	// when a weight is NaN or infinite, or the weights sum to zero or less.
	ErrInvalidSelectionWeights = errors.New("ga: invalid selection weights")

	// ErrUnknownStrategy is returned by the registry lookups.
	ErrUnknownStrategy = errors.New("ga: unknown strategy")
)
