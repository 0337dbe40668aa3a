// Package ga implements the generational genetic algorithm that searches for
// high-gain routes.
//
// Building blocks:
//
//   - Population: Initialize (rejection sampling of valid routes) and
//     EvaluatePopulation (gain per route, adopting compact encodings).
//   - Selector:  Roulette, Ranking, Tournament, ExponentialRank, LinearRank.
//   - Crossover: CycleCrossover, PMXCrossover, OrderCrossover, UniformCrossover.
//   - Mutator:   Swap, Inversion, Scramble, Insertion, Displacement.
//   - EliteFunc: EliteMax; NElites(n) for top-n extraction.
//
// Run ties them together: it seeds one RNG stream from Options.Seed, builds
// and evaluates the initial population, then for each generation breeds a
// full offspring population (selection → crossover/clone → mutation →
// validation, retrying invalid pairs), optionally copies the previous elite
// into the last offspring slot, re-evaluates and records the elite.
//
// Strategies are small interfaces, so swapping them is a configuration
// choice; the registry (SelectorByName etc.) maps configuration names to
// implementations.
//
// Determinism: every stochastic step draws from the *rand.Rand passed in.
// math/rand.Rand is NOT goroutine-safe; use DeriveSeed to give
// each worker its own stream.
//
// Failure modes are explicit: a missing elite function is ErrNoEliteFunc,
// and a generation that cannot fill its offspring population within
// Options.MaxBreedingRounds returns ErrBreedingStalled instead of spinning.
package ga
