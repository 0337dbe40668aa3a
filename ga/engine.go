// Package ga - generational loop.
//
// Run drives the state machine
//
//	Initialized → Evaluated → (Breeding → Replaced)×Generations → Terminal
//
// on a single goroutine with a single RNG stream seeded from Options.Seed.
// Offspring are produced in pairs; a pair is accepted only when both children
// pass route.IsValid. Each generation may consume at most MaxBreedingRounds
// parent pairs; running out returns ErrBreedingStalled instead of spinning.
package ga

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// History is the per-generation elite trace. Index 0 is the initial
// population; len == Generations+1.
type History struct {
	Fitness []float64
	Elites  []route.Route
}

// Stats counts breeding work across the whole run.
type Stats struct {
	// Rounds is the number of parent pairs drawn.
	Rounds int
	// Attempts is the number of crossover+mutation attempts.
	Attempts int
	// Rejected is the number of attempts discarded by the validator.
	Rejected int
	// DuplicateParents counts pairs accepted as identical after the retry limit.
	DuplicateParents int
}

// Result is the outcome of Run.
type Result struct {
	// Best is the elite of the final population (an independent copy).
	Best        route.Route
	BestFitness float64

	History History

	// Population and Fitness describe the final generation.
	Population Population
	Fitness    []float64

	// Generations is the number of completed breeding cycles.
	Generations int
	Stats       Stats
}

// engine carries the per-run state shared by the breeding helpers.
type engine struct {
	opts  Options
	gain  matrix.Matrix
	rng   *rand.Rand
	log   *slog.Logger
	stats Stats
}

// Run evaluates opts against the gain matrix and returns the best route of
// the final generation.
//
// Errors:
//   - ErrNoEliteFunc when opts.Elite is nil (checked first);
//   - option sentinels from validateOptions;
//   - route.ErrGainMatrix for a malformed matrix;
//   - ErrBreedingStalled when a generation runs out of breeding rounds;
//   - ctx.Err() when ctx is cancelled between rounds or generations;
//   - Sink errors, wrapped with the generation index.
//
// Complexity: O(Generations · PopulationSize · MaxOffspringAttempts · route.Length)
// in the worst case.
func Run(ctx context.Context, gain matrix.Matrix, opts Options) (Result, error) {
	if opts.Elite == nil {
		return Result{}, ErrNoEliteFunc
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := route.ValidateGainMatrix(gain); err != nil {
		return Result{}, err
	}

	e := &engine{
		opts: opts,
		gain: gain,
		rng:  NewRNG(opts.Seed),
		log:  opts.Logger,
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}

	// Initialized.
	pop, err := e.initialize()
	if err != nil {
		return Result{}, err
	}

	// Evaluated.
	fit, err := EvaluatePopulation(pop, gain)
	if err != nil {
		return Result{}, err
	}
	hist := History{
		Fitness: make([]float64, 0, opts.Generations+1),
		Elites:  make([]route.Route, 0, opts.Generations+1),
	}
	elite, eliteFit := opts.Elite(pop, fit)
	if err = e.record(&hist, 0, elite, eliteFit); err != nil {
		return Result{}, err
	}

	var (
		g         int
		offspring Population
	)
	for g = 1; g <= opts.Generations; g++ {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}

		// Breeding.
		if offspring, err = e.breed(ctx, g, pop, fit); err != nil {
			return Result{}, err
		}
		if opts.Elitism && elite != nil {
			offspring[len(offspring)-1] = elite.Clone()
		}

		// Replaced.
		pop = offspring
		if fit, err = EvaluatePopulation(pop, gain); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", g, err)
		}
		elite, eliteFit = opts.Elite(pop, fit)
		if err = e.record(&hist, g, elite, eliteFit); err != nil {
			return Result{}, err
		}
	}

	// Terminal.
	best, bestFit := opts.Elite(pop, fit)
	e.log.Debug("ga run finished",
		"seed", opts.Seed,
		"generations", opts.Generations,
		"best_fitness", bestFit,
		"best", best.String(),
		"rounds", e.stats.Rounds,
		"rejected", e.stats.Rejected,
	)

	return Result{
		Best:        best.Clone(),
		BestFitness: bestFit,
		History:     hist,
		Population:  pop,
		Fitness:     fit,
		Generations: opts.Generations,
		Stats:       e.stats,
	}, nil
}

// initialize builds generation 0 and checks what a custom Initializer returned.
func (e *engine) initialize() (Population, error) {
	build := e.opts.Initializer
	if build == nil {
		build = Initialize
	}
	pop, err := build(e.rng, e.opts.PopulationSize)
	if err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}
	if len(pop) != e.opts.PopulationSize {
		return nil, fmt.Errorf("initialize: got %d individuals, want %d: %w",
			len(pop), e.opts.PopulationSize, ErrPopulationTooSmall)
	}
	for i, r := range pop {
		if err = route.Check(r); err != nil {
			return nil, fmt.Errorf("initialize: individual %d: %w", i, err)
		}
	}

	return pop, nil
}

// record appends the generation elite to the history, the sink and the log.
func (e *engine) record(h *History, g int, elite route.Route, fit float64) error {
	h.Fitness = append(h.Fitness, fit)
	h.Elites = append(h.Elites, elite.Clone())

	e.log.Debug("generation complete", "generation", g, "elite_fitness", fit, "elite", elite.String())

	if e.opts.Sink == nil {
		return nil
	}
	rec := GenerationRecord{Seed: e.opts.Seed, Generation: g, Fitness: fit, Route: elite.Clone()}
	if err := e.opts.Sink.WriteGeneration(rec); err != nil {
		return fmt.Errorf("generation %d: write log: %w", g, err)
	}

	return nil
}

// breed fills a new population of len(pop) valid offspring.
func (e *engine) breed(ctx context.Context, g int, pop Population, fit []float64) (Population, error) {
	var (
		size   = len(pop)
		budget = e.opts.breedingBudget()
		out    = make(Population, 0, size+1)
		round  int
	)
	for round = 0; len(out) < size; round++ {
		if round >= budget {
			return nil, fmt.Errorf("generation %d: %d rounds produced %d/%d offspring: %w",
				g, round, len(out), size, ErrBreedingStalled)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.stats.Rounds++

		p1, p2, err := e.selectParents(pop, fit)
		if err != nil {
			return nil, fmt.Errorf("generation %d: select: %w", g, err)
		}
		if c1, c2, ok := e.offspring(p1, p2); ok {
			out = append(out, c1, c2)
		}
	}

	// Odd sizes: drop the surplus child.
	return out[:size], nil
}

// selectParents draws two parents, re-drawing both while they are the same
// route, up to MaxParentRetries times.
func (e *engine) selectParents(pop Population, fit []float64) (route.Route, route.Route, error) {
	var (
		sel    = e.opts.Selector
		p1, p2 route.Route
		err    error
	)
	for i := 0; i <= e.opts.MaxParentRetries; i++ {
		if p1, err = sel.Select(e.rng, pop, fit); err != nil {
			return nil, nil, err
		}
		if p2, err = sel.Select(e.rng, pop, fit); err != nil {
			return nil, nil, err
		}
		if !p2.Equal(p1) {
			return p1, p2, nil
		}
	}
	e.stats.DuplicateParents++

	return p1, p2, nil
}

// offspring tries up to MaxOffspringAttempts times to turn a parent pair into
// two valid children.
func (e *engine) offspring(p1, p2 route.Route) (route.Route, route.Route, bool) {
	var c1, c2 route.Route
	for a := 0; a < e.opts.MaxOffspringAttempts; a++ {
		e.stats.Attempts++
		if e.rng.Float64() < e.opts.CrossoverProb {
			c1, c2 = e.opts.Crossover.Crossover(e.rng, p1, p2)
		} else {
			c1, c2 = p1, p2
		}
		// Clone before repairing so a crossover returning its inputs cannot
		// alter the parents.
		c1 = route.FixPlaceholder(c1.Clone())
		c2 = route.FixPlaceholder(c2.Clone())
		c1 = e.opts.Mutator.Mutate(e.rng, c1, e.opts.MutationProb)
		c2 = e.opts.Mutator.Mutate(e.rng, c2, e.opts.MutationProb)

		if route.IsValid(c1) && route.IsValid(c2) {
			return c1, c2, true
		}
		e.stats.Rejected++
	}

	return nil, nil, false
}
