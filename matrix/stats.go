// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summarize a transition table (min, max, mean, smallest positive entry).
//   - Compare two tables element-wise within a tolerance.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-paths operate on the flat row-major buffer.
//   - O(r*c) time, O(1) extra space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opDescribe = "Describe"
	opAllClose = "AllClose"
)

// Summary holds aggregate statistics over the entries of a matrix.
// MinPositive is +Inf when no entry is strictly positive.
type Summary struct {
	Count       int
	Min         float64
	Max         float64
	Mean        float64
	MinPositive float64
}

// String renders the summary as a compact single line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d min=%.1f max=%.1f mean=%.2f min+=%.1f",
		s.Count, s.Min, s.Max, s.Mean, s.MinPositive)
}

// Describe scans m and returns its Summary. When skipDiagonal is true,
// entries (i,i) are left out, which is what transition tables want.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions when nothing is left to summarize (1×1 with skipDiagonal).
//
// Complexity: O(r*c).
func Describe(m Matrix, skipDiagonal bool) (Summary, error) {
	if err := ValidateNotNil(m); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", opDescribe, err)
	}

	s := Summary{Min: math.Inf(1), Max: math.Inf(-1), MinPositive: math.Inf(1)}
	var sum float64
	add := func(v float64) {
		s.Count++
		sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		if v > 0 && v < s.MinPositive {
			s.MinPositive = v
		}
	}

	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if skipDiagonal && idx/c == idx%c {
				continue
			}
			add(v)
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if skipDiagonal && i == j {
					continue
				}
				v, err := m.At(i, j)
				if err != nil {
					return Summary{}, fmt.Errorf("%s: %w", opDescribe, err)
				}
				add(v)
			}
		}
	}
	if s.Count == 0 {
		return Summary{}, fmt.Errorf("%s: %w", opDescribe, ErrInvalidDimensions)
	}
	s.Mean = sum / float64(s.Count)

	return s, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds for every entry.
// Negative tolerances are taken by absolute value.
//
// Errors: ErrNaNInf (non-finite tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("%s: %w", opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, fmt.Errorf("%s: %dx%d vs %dx%d: %w",
			opAllClose, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	near := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !near(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if !near(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
