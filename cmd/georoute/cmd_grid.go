package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/gridsearch"
)

// runGrid evaluates the configured grid and prints the best combination.
func runGrid(cmd *cobra.Command, _ []string) error {
	sc := cfg.Search
	if cmd.Flags().Changed("runs") {
		sc.Runs = gridRuns
	}
	if cmd.Flags().Changed("workers") {
		sc.Workers = gridWorkers
	}

	gain, err := buildGain(cfg.Matrix)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	rep, err := gridsearch.Search(cmd.Context(), gain, cfg.Grid, gridsearch.Options{
		Runs:    sc.Runs,
		Workers: sc.Workers,
		Metrics: gridsearch.NewMetrics(reg),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "combinations: %d, runs each: %d\n", len(rep.All), sc.Runs)
	fmt.Fprintf(out, "best: %s\n", rep.Best.Combination)
	fmt.Fprintf(out, "id: %s\n", rep.Best.ID)
	fmt.Fprintf(out, "avg fitness: %.1f\n", rep.Best.AvgFitness)
	fmt.Fprintf(out, "avg runtime: %s\n", rep.Best.AvgRuntime)

	if gridMetricsOut != "" {
		if err = prometheus.WriteToTextfile(gridMetricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
