package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/georoute/config"
	"github.com/katalvlaran/georoute/matrix"
)

// buildGain builds the gain table described by mc and logs its summary.
func buildGain(mc config.MatrixConfig) (*matrix.Dense, error) {
	m, err := mc.Build()
	if err != nil {
		return nil, err
	}
	if sum, serr := matrix.Describe(m, true); serr == nil {
		logger.Debug("gain matrix", "source", mc.Source, "summary", sum.String())
	}

	return m, nil
}

// printMatrix writes the configured gain table as a "matrix:" config section
// with source inline, so it can be pasted into a config file.
func printMatrix(cmd *cobra.Command, _ []string) error {
	mc := cfg.Matrix
	if cmd.Flags().Changed("source") {
		mc.Source = matrixSource
	}
	if cmd.Flags().Changed("seed") {
		mc.Seed = matrixSeed
	}
	m, err := buildGain(mc)
	if err != nil {
		return err
	}

	section := struct {
		Matrix config.MatrixConfig `yaml:"matrix"`
	}{
		Matrix: config.MatrixConfig{Source: config.SourceInline, Rows: m.ToRows()},
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err = enc.Encode(section); err != nil {
		return err
	}

	return enc.Close()
}
