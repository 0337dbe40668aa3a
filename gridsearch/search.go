package gridsearch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// DefaultRuns is the number of runs per combination used by the CLI.
const DefaultRuns = 15

// idSpace namespaces the name-based Stats IDs.
var idSpace = uuid.MustParse("3f1c2a4e-7b9d-4c6e-8a1f-2d5b9e0c7a13")

// Options configures Search.
type Options struct {
	// Runs per combination (≥ 1).
	Runs int
	// Workers bounds concurrent runs; ≤ 0 means runtime.NumCPU().
	Workers int
	// Metrics is optional.
	Metrics *Metrics
	// Sink, when set, receives the generation log of every run. It must be
	// safe for concurrent use.
	Sink ga.Sink
	// Logger receives progress at Info and per-run results at Debug; nil ⇒ discard.
	Logger *slog.Logger
}

// Stats aggregates the runs of one combination.
type Stats struct {
	// ID is derived from the combination label, so it is stable across searches.
	ID          uuid.UUID
	Combination Combination
	AvgRuntime  time.Duration
	AvgFitness  float64
	// Fitness holds the best fitness of each run, by run index.
	Fitness []float64
}

// Report is the result of Search.
type Report struct {
	// Best has the highest AvgFitness; the first such combination wins ties.
	Best Stats
	// All is in Grid.Combinations order.
	All []Stats
}

// runOutcome is one finished ga.Run.
type runOutcome struct {
	fitness float64
	elapsed time.Duration
}

// Search runs every combination of grid opts.Runs times against gain.
//
// Errors: ErrInvalidRuns, ErrEmptyGrid, route.ErrGainMatrix,
// ga.ErrUnknownStrategy (before any run starts), and the first run error,
// wrapped with its combination and run index.
//
// Complexity: Size·Runs GA runs, at most Workers at a time.
func Search(ctx context.Context, gain matrix.Matrix, grid Grid, opts Options) (Report, error) {
	if opts.Runs < 1 {
		return Report{}, fmt.Errorf("runs=%d: %w", opts.Runs, ErrInvalidRuns)
	}
	if err := route.ValidateGainMatrix(gain); err != nil {
		return Report{}, err
	}
	combos := grid.Combinations()
	if len(combos) == 0 {
		return Report{}, ErrEmptyGrid
	}
	base := make([]ga.Options, len(combos))
	for i, c := range combos {
		o, err := c.Options()
		if err != nil {
			return Report{}, fmt.Errorf("combination %d: %w", i, err)
		}
		base[i] = o
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log.Info("grid search started", "combinations", len(combos), "runs", opts.Runs, "workers", workers)

	outcomes := make([][]runOutcome, len(combos))
	for i := range outcomes {
		outcomes[i] = make([]runOutcome, opts.Runs)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ci := range combos {
		for r := 0; r < opts.Runs; r++ {
			g.Go(func() error {
				o := base[ci]
				o.Seed = ga.DeriveSeed(combos[ci].Seed, uint64(r))
				o.Sink = opts.Sink

				start := time.Now()
				res, err := ga.Run(gCtx, gain.Clone(), o)
				elapsed := time.Since(start)
				opts.Metrics.observeRun(combos[ci], elapsed, err)
				if err != nil {
					return fmt.Errorf("combination %d (%s) run %d: %w", ci, combos[ci], r, err)
				}

				outcomes[ci][r] = runOutcome{fitness: res.BestFitness, elapsed: elapsed}
				log.Debug("run finished", "combination", ci, "run", r, "fitness", res.BestFitness, "elapsed", elapsed)

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{All: make([]Stats, len(combos))}
	best := 0
	for ci, c := range combos {
		rep.All[ci] = aggregate(c, outcomes[ci])
		if rep.All[ci].AvgFitness > rep.All[best].AvgFitness {
			best = ci
		}
	}
	rep.Best = rep.All[best]
	opts.Metrics.observeSearch(len(combos), rep.Best.AvgFitness)
	log.Info("grid search finished",
		"best", rep.Best.Combination.String(),
		"avg_fitness", rep.Best.AvgFitness,
		"avg_runtime", rep.Best.AvgRuntime,
	)

	return rep, nil
}

// aggregate averages the runs of one combination.
func aggregate(c Combination, runs []runOutcome) Stats {
	st := Stats{
		ID:          uuid.NewSHA1(idSpace, []byte(c.String())),
		Combination: c,
		Fitness:     make([]float64, len(runs)),
	}
	var (
		sumFit float64
		sumDur time.Duration
	)
	for i, r := range runs {
		st.Fitness[i] = r.fitness
		sumFit += r.fitness
		sumDur += r.elapsed
	}
	st.AvgFitness = sumFit / float64(len(runs))
	st.AvgRuntime = sumDur / time.Duration(len(runs))

	return st
}
