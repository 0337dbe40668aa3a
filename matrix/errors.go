// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w for
// context) and tests check them via errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows is returned when a row-slice input has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates a matrix of the wrong order for the caller.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
