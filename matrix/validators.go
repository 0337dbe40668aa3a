// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape and numeric-policy checks.
//   - Return sentinel errors wrapped with the validator tag so callers can use errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil, square and of order n.
// Pass n<=0 to accept any order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m Matrix, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if n > 0 && m.Rows() != n {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every entry and rejects NaN/±Inf.
// When skipDiagonal is true, entries (i,i) are ignored (they are unused by
// transition tables).
//
// Complexity: O(r*c).
func ValidateFinite(m Matrix, skipDiagonal bool) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if skipDiagonal && i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
