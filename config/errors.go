package config

import "errors"

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownMatrixSource is returned by MatrixConfig.Build for an
	// unrecognised source.
	ErrUnknownMatrixSource = errors.New("config: unknown matrix source")
)
