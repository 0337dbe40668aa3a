package gridsearch

import "errors"

var (
	// ErrEmptyGrid is returned when a grid has no combinations.
	ErrEmptyGrid = errors.New("gridsearch: empty grid")

	// ErrInvalidRuns is returned when Options.Runs < 1.
	ErrInvalidRuns = errors.New("gridsearch: runs must be >= 1")
)
