package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/config"
	"github.com/katalvlaran/georoute/ga"
	"github.com/katalvlaran/georoute/route"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "georoute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsReferenceRunAndValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 150, cfg.Run.PopulationSize)
	assert.Equal(t, 15, cfg.Run.Generations)
	assert.Equal(t, "roulette", cfg.Run.Selector)
	assert.Equal(t, "cycle", cfg.Run.Crossover)
	assert.Equal(t, "displacement", cfg.Run.Mutator)
	assert.False(t, cfg.Run.Elitism)
	assert.Equal(t, int64(12), cfg.Run.Seed)
	assert.Equal(t, config.SourceSample, cfg.Matrix.Source)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
run:
  population_size: 40
  selector: tournament
  tournament_size: 5
grid:
  selectors: [ranking]
search:
  runs: 3
log:
  level: debug
`)
	t.Setenv("GEOROUTE_RUN_POPULATION_SIZE", "60")
	t.Setenv("GEOROUTE_GRID_MUTATORS", "swap,inversion")
	t.Setenv("GEOROUTE_SEARCH_WORKERS", "2")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Run.PopulationSize, "env wins over file")
	assert.Equal(t, "tournament", cfg.Run.Selector)
	assert.Equal(t, 15, cfg.Run.Generations, "untouched keys keep defaults")
	assert.Equal(t, []string{"ranking"}, cfg.Grid.Selectors)
	assert.Equal(t, []string{"swap", "inversion"}, cfg.Grid.Mutators)
	assert.Equal(t, 3, cfg.Search.Runs)
	assert.Equal(t, 2, cfg.Search.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "run:\n  populaton_size: 3\n"))
	assert.ErrorContains(t, err, "yaml")

	_, err = config.Load(writeFile(t, "run:\n  selector: boltzmann\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "grid:\n  crossovers: [edge]\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("GEOROUTE_RUN_GENERATIONS", "many")
	_, err = config.Load("")
	assert.ErrorContains(t, err, "env")
}

func TestValidate_Ranges(t *testing.T) {
	cases := map[string]func(*config.Config){
		"population":  func(c *config.Config) { c.Run.PopulationSize = 1 },
		"probability": func(c *config.Config) { c.Run.MutationProb = 2 },
		"attempts":    func(c *config.Config) { c.Run.MaxOffspringAttempts = 0 },
		"runs":        func(c *config.Config) { c.Search.Runs = 0 },
		"source":      func(c *config.Config) { c.Matrix.Source = "csv" },
		"log level":   func(c *config.Config) { c.Log.Level = "trace" },
		"grid sizes":  func(c *config.Config) { c.Grid.PopulationSizes = []int{1} },
		"grid empty":  func(c *config.Config) { c.Grid.Seeds = nil },
		"range":       func(c *config.Config) { c.Matrix.Source, c.Matrix.Low, c.Matrix.High = "random", 5, 5 },
		"inline":      func(c *config.Config) { c.Matrix.Source = "inline" },
	}
	for name, edit := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestRunConfig_Options(t *testing.T) {
	rc := config.Default().Run
	rc.Selector = "tournament"
	rc.TournamentSize = 7
	rc.MaxBreedingRounds = 500

	opts, err := rc.Options()
	require.NoError(t, err)
	assert.Equal(t, ga.Tournament{Size: 7}, opts.Selector)
	assert.Equal(t, ga.CycleCrossover{}, opts.Crossover)
	assert.Equal(t, 500, opts.MaxBreedingRounds)
	assert.NotNil(t, opts.Elite)

	rc.Selector = "exponential_rank"
	rc.ExponentialRate = 0.3
	opts, err = rc.Options()
	require.NoError(t, err)
	assert.Equal(t, ga.ExponentialRank{Rate: 0.3}, opts.Selector)

	rc.Mutator = "teleport"
	_, err = rc.Options()
	assert.ErrorIs(t, err, ga.ErrUnknownStrategy)
}

func TestRunConfig_ReferenceRun(t *testing.T) {
	cfg := config.Default()
	cfg.Run.PopulationSize = 30
	cfg.Run.Generations = 5
	cfg.Run.Selector = "ranking"
	opts, err := cfg.Run.Options()
	require.NoError(t, err)
	gain, err := cfg.Matrix.Build()
	require.NoError(t, err)

	res, err := ga.Run(context.Background(), gain, opts)
	require.NoError(t, err)
	assert.True(t, route.IsValid(res.Best))
}

func TestMatrixConfig_Build(t *testing.T) {
	m, err := config.MatrixConfig{Source: config.SourceSample}.Build()
	require.NoError(t, err)
	v, _ := m.At(0, 1)
	assert.Equal(t, 506.1, v)

	a, err := config.MatrixConfig{Source: config.SourceRandom, Seed: 3, Low: -300, High: 900}.Build()
	require.NoError(t, err)
	b, err := config.MatrixConfig{Source: config.SourceRandom, Seed: 3, Low: -300, High: 900}.Build()
	require.NoError(t, err)
	assert.Equal(t, a.ToRows(), b.ToRows())

	rows := make([][]float64, route.Locations)
	for i := range rows {
		rows[i] = make([]float64, route.Locations)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(i + j)
			}
		}
	}
	m, err = config.MatrixConfig{Source: config.SourceInline, Rows: rows}.Build()
	require.NoError(t, err)
	assert.Equal(t, rows, m.ToRows())

	_, err = config.MatrixConfig{Source: config.SourceInline, Rows: rows[:3]}.Build()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.MatrixConfig{Source: "csv"}.Build()
	assert.ErrorIs(t, err, config.ErrUnknownMatrixSource)
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	log := config.LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"k":1`)
}
