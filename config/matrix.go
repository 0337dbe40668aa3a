package config

import (
	"fmt"

	"github.com/katalvlaran/georoute/geodata"
	"github.com/katalvlaran/georoute/matrix"
	"github.com/katalvlaran/georoute/route"
)

// Matrix sources.
const (
	SourceSample = "sample"
	SourceRandom = "random"
	SourceInline = "inline"
)

// MatrixConfig selects the gain table.
type MatrixConfig struct {
	// Source is sample, random or inline.
	Source string `yaml:"source" env:"SOURCE" validate:"oneof=sample random inline"`
	// Seed, Low and High drive the random source.
	Seed int64   `yaml:"seed,omitempty" env:"SEED"`
	Low  float64 `yaml:"low,omitempty" env:"LOW"`
	High float64 `yaml:"high,omitempty" env:"HIGH"`
	// Rows is the inline table; row i, column j is the gain from area i+1 to j+1.
	Rows [][]float64 `yaml:"rows,omitempty"`
}

// Build returns the configured gain table.
func (m MatrixConfig) Build() (*matrix.Dense, error) {
	switch m.Source {
	case SourceSample:
		return geodata.Sample(), nil
	case SourceRandom:
		if !(m.Low < m.High) {
			return nil, fmt.Errorf("%w: matrix range [%g, %g) is empty", ErrInvalidConfig, m.Low, m.High)
		}
		return geodata.Generate(geodata.WithSeed(m.Seed), geodata.WithRange(m.Low, m.High))
	case SourceInline:
		if err := checkInlineRows(m.Rows); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return matrix.NewDenseFromRows(m.Rows)
	default:
		return nil, fmt.Errorf("%q: %w", m.Source, ErrUnknownMatrixSource)
	}
}

func checkInlineRows(rows [][]float64) error {
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return fmt.Errorf("matrix rows: %w", err)
	}
	if err = route.ValidateGainMatrix(d); err != nil {
		return fmt.Errorf("matrix rows: %w", err)
	}

	return nil
}
