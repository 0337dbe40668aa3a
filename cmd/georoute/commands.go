package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/georoute/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "georoute",
		Short: "Find high-gain routes through the ten map areas",
		Long: `georoute runs a genetic algorithm over closed routes that start and end in
Dirtmouth, honouring the ordering, position and skip rules of the map.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the genetic algorithm once and print the best route",
		Args:  cobra.NoArgs,
		RunE:  runOnce,
	}
	gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Evaluate every parameter combination of the configured grid",
		Args:  cobra.NoArgs,
		RunE:  runGrid,
	}
	matrixCmd = &cobra.Command{
		Use:   "matrix",
		Short: "Print the configured gain matrix as an inline YAML config section",
		Args:  cobra.NoArgs,
		RunE:  printMatrix,
	}

	configPath string
	logLevel   string

	// run flags
	runPop       int
	runGens      int
	runSeed      int64
	runSelector  string
	runCrossover string
	runMutator   string
	runElitism   bool
	runLogPath   string

	// grid flags
	gridRuns       int
	gridWorkers    int
	gridMetricsOut string

	// matrix flags
	matrixSource string
	matrixSeed   int64

	// set by loadConfig
	cfg    config.Config
	logger *slog.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	runCmd.Flags().IntVar(&runPop, "pop", 0, "population size")
	runCmd.Flags().IntVar(&runGens, "gens", 0, "number of generations")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "RNG seed")
	runCmd.Flags().StringVar(&runSelector, "selector", "", "selection strategy")
	runCmd.Flags().StringVar(&runCrossover, "crossover", "", "crossover strategy")
	runCmd.Flags().StringVar(&runMutator, "mutator", "", "mutation strategy")
	runCmd.Flags().BoolVar(&runElitism, "elitism", false, "keep the previous elite in every generation")
	runCmd.Flags().StringVar(&runLogPath, "log", "", "per-generation log file (.csv or .xlsx)")

	gridCmd.Flags().IntVar(&gridRuns, "runs", 0, "runs per combination")
	gridCmd.Flags().IntVar(&gridWorkers, "workers", 0, "concurrent runs (0 = CPU count)")
	gridCmd.Flags().StringVar(&gridMetricsOut, "metrics-out", "", "write Prometheus metrics to this file")

	matrixCmd.Flags().StringVar(&matrixSource, "source", "", "sample or random")
	matrixCmd.Flags().Int64Var(&matrixSeed, "seed", 0, "seed for the random source")

	rootCmd.AddCommand(runCmd, gridCmd, matrixCmd)
}

// loadConfig merges defaults, --config and the environment, then builds the
// logger. Every invocation gets its own run ID.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	if cfg, err = config.Load(configPath); err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	logger = cfg.Log.Logger(cmd.ErrOrStderr()).With(
		"run_id", uuid.NewString(),
		"command", cmd.Name(),
	)
	logger.Debug("configuration loaded", "path", configPath)

	return nil
}
