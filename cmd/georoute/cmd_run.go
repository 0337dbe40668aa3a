package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/route"
	"github.com/katalvlaran/georoute/runlog"
)

// runOnce executes one GA run with the config's run section and any flag
// overrides.
func runOnce(cmd *cobra.Command, _ []string) (err error) {
	rc := cfg.Run
	flags := cmd.Flags()
	if flags.Changed("pop") {
		rc.PopulationSize = runPop
	}
	if flags.Changed("gens") {
		rc.Generations = runGens
	}
	if flags.Changed("seed") {
		rc.Seed = runSeed
	}
	if flags.Changed("selector") {
		rc.Selector = runSelector
	}
	if flags.Changed("crossover") {
		rc.Crossover = runCrossover
	}
	if flags.Changed("mutator") {
		rc.Mutator = runMutator
	}
	if flags.Changed("elitism") {
		rc.Elitism = runElitism
	}
	if flags.Changed("log") {
		rc.LogPath = runLogPath
	}

	opts, err := rc.Options()
	if err != nil {
		return err
	}
	gain, err := buildGain(cfg.Matrix)
	if err != nil {
		return err
	}
	opts.Logger = logger

	if rc.LogPath != "" {
		sink, oerr := runlog.Open(rc.LogPath)
		if oerr != nil {
			return oerr
		}
		defer func() {
			if cerr := sink.Close(); err == nil {
				err = cerr
			}
		}()
		opts.Sink = sink
	}

	logger.Info("run started",
		"matrix", cfg.Matrix.Source,
		"population", opts.PopulationSize,
		"generations", opts.Generations,
		"selector", opts.Selector.Name(),
		"crossover", opts.Crossover.Name(),
		"mutator", opts.Mutator.Name(),
		"elitism", opts.Elitism,
		"seed", opts.Seed,
	)
	res, err := ga.Run(cmd.Context(), gain, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "generation  elite fitness")
	for g, f := range res.History.Fitness {
		fmt.Fprintf(out, "%10d  %.1f\n", g, f)
	}
	fmt.Fprintf(out, "best route:   %s\n", runlog.FormatRoute(res.Best))
	fmt.Fprintf(out, "best areas:   %s\n", strings.Join(route.Initials(res.Best), " -> "))
	fmt.Fprintf(out, "best fitness: %.1f\n", res.BestFitness)
	logger.Info("run finished", "best_fitness", res.BestFitness, "rejected_offspring", res.Stats.Rejected)

	return nil
}
