package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/gridsearch"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GEOROUTE_"

// Config is the full georoute configuration.
type Config struct {
	// Run configures a single GA run (the "run" command).
	Run RunConfig `yaml:"run" envPrefix:"RUN_"`
	// Grid is the parameter sweep of the "grid" command.
	Grid gridsearch.Grid `yaml:"grid" envPrefix:"GRID_"`
	// Search controls how the grid is executed.
	Search SearchConfig `yaml:"search" envPrefix:"SEARCH_"`
	// Matrix selects the gain table.
	Matrix MatrixConfig `yaml:"matrix" envPrefix:"MATRIX_"`
	// Log configures the process logger.
	Log LogConfig `yaml:"log" envPrefix:"LOG_"`
}

// RunConfig mirrors ga.Options with strategies given by name.
type RunConfig struct {
	PopulationSize       int     `yaml:"population_size" env:"POPULATION_SIZE" validate:"gte=2"`
	Generations          int     `yaml:"generations" env:"GENERATIONS" validate:"gte=0"`
	CrossoverProb        float64 `yaml:"crossover_prob" env:"CROSSOVER_PROB" validate:"gte=0,lte=1"`
	MutationProb         float64 `yaml:"mutation_prob" env:"MUTATION_PROB" validate:"gte=0,lte=1"`
	Selector             string  `yaml:"selector" env:"SELECTOR" validate:"required,selector"`
	Crossover            string  `yaml:"crossover" env:"CROSSOVER" validate:"required,crossover"`
	Mutator              string  `yaml:"mutator" env:"MUTATOR" validate:"required,mutator"`
	TournamentSize       int     `yaml:"tournament_size" env:"TOURNAMENT_SIZE" validate:"gte=0"`
	ExponentialRate      float64 `yaml:"exponential_rate" env:"EXPONENTIAL_RATE" validate:"gte=0"`
	Elitism              bool    `yaml:"elitism" env:"ELITISM"`
	Seed                 int64   `yaml:"seed" env:"SEED"`
	MaxParentRetries     int     `yaml:"max_parent_retries" env:"MAX_PARENT_RETRIES" validate:"gte=0"`
	MaxOffspringAttempts int     `yaml:"max_offspring_attempts" env:"MAX_OFFSPRING_ATTEMPTS" validate:"gte=1"`
	MaxBreedingRounds    int     `yaml:"max_breeding_rounds" env:"MAX_BREEDING_ROUNDS" validate:"gte=0"`
	// LogPath is the optional per-generation log (.csv or .xlsx).
	LogPath string `yaml:"log_path" env:"LOG_PATH"`
}

// SearchConfig controls gridsearch.Search.
type SearchConfig struct {
	Runs    int `yaml:"runs" env:"RUNS" validate:"gte=1"`
	Workers int `yaml:"workers" env:"WORKERS" validate:"gte=0"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Run: RunConfig{
			PopulationSize:       ga.DefaultPopulationSize,
			Generations:          ga.DefaultGenerations,
			CrossoverProb:        ga.DefaultCrossoverProb,
			MutationProb:         ga.DefaultMutationProb,
			Selector:             ga.Roulette{}.Name(),
			Crossover:            ga.CycleCrossover{}.Name(),
			Mutator:              ga.Displacement{}.Name(),
			TournamentSize:       ga.DefaultTournamentSize,
			ExponentialRate:      ga.DefaultExponentialRate,
			Elitism:              false,
			Seed:                 12,
			MaxParentRetries:     ga.DefaultMaxParentRetries,
			MaxOffspringAttempts: ga.DefaultMaxOffspringAttempts,
		},
		Grid:   gridsearch.DefaultGrid(),
		Search: SearchConfig{Runs: gridsearch.DefaultRuns},
		Matrix: MatrixConfig{Source: SourceSample, Seed: 1, Low: -300, High: 900},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = Decode(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode merges YAML data into cfg. Keys absent from data keep their values.
// Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: yaml: %w", err)
	}

	return nil
}

// ApplyEnv overrides cfg from GEOROUTE_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		var agg env.AggregateError
		if errors.As(err, &agg) && len(agg.Errors) > 0 {
			return fmt.Errorf("config: env: %w", agg.Errors[0])
		}
		return fmt.Errorf("config: env: %w", err)
	}

	return nil
}

// Options converts the run section into ga.Options.
func (r RunConfig) Options() (ga.Options, error) {
	sel, err := ga.SelectorByName(r.Selector)
	if err != nil {
		return ga.Options{}, err
	}
	switch s := sel.(type) {
	case ga.Tournament:
		if r.TournamentSize > 0 {
			s.Size = r.TournamentSize
		}
		sel = s
	case ga.ExponentialRank:
		if r.ExponentialRate > 0 {
			s.Rate = r.ExponentialRate
		}
		sel = s
	}
	xo, err := ga.CrossoverByName(r.Crossover)
	if err != nil {
		return ga.Options{}, err
	}
	mut, err := ga.MutatorByName(r.Mutator)
	if err != nil {
		return ga.Options{}, err
	}

	opts := ga.DefaultOptions()
	opts.PopulationSize = r.PopulationSize
	opts.Generations = r.Generations
	opts.CrossoverProb = r.CrossoverProb
	opts.MutationProb = r.MutationProb
	opts.Selector, opts.Crossover, opts.Mutator = sel, xo, mut
	opts.Elitism = r.Elitism
	opts.Seed = r.Seed
	opts.MaxParentRetries = r.MaxParentRetries
	opts.MaxOffspringAttempts = r.MaxOffspringAttempts
	opts.MaxBreedingRounds = r.MaxBreedingRounds

	return opts, nil
}
