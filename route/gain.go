// Package route - gain evaluation.
//
// A route can be read two ways once the trigger adjacency holds:
//
//   - expanded: every location visited, gain = Σ g[r[i]][r[i+1]];
//   - compact:  SkipEligible replaced by Skip, the two edges through it
//     contracted into the single edge predecessor→successor.
//
// Analyze computes both hypotheses and returns the winning encoding
// explicitly; ties go to the compact encoding. Evaluate is the in-place
// variant used by code that treats the route itself as authoritative.
//
// Gains are stabilized to 1e-9 so that comparisons are reproducible.
package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georoute/matrix"
)

// roundScale controls final gain stabilization precision (1e-9).
const roundScale = 1e9

// Evaluation is the outcome of Analyze.
type Evaluation struct {
	// Gain is the total transition gain of Route.
	Gain float64
	// Route is the authoritative encoding: compact when Contracted, fully
	// expanded otherwise. It never aliases the input.
	Route Route
	// Contracted reports whether the Skip encoding won.
	Contracted bool
}

// ValidateGainMatrix checks that m is a Locations×Locations table with finite
// off-diagonal entries. The diagonal is never read and is not checked.
func ValidateGainMatrix(m matrix.Matrix) error {
	if err := matrix.ValidateSquare(m, Locations); err != nil {
		return fmt.Errorf("%w: %w", ErrGainMatrix, err)
	}
	if err := matrix.ValidateFinite(m, true); err != nil {
		return fmt.Errorf("%w: %w", ErrGainMatrix, err)
	}

	return nil
}

// Analyze evaluates r against the gain matrix under both encodings.
//
// Steps:
//  1. Expand any Skip marker back to SkipEligible and sum the expanded gain.
//  2. If the trigger holds and SkipEligible is present, sum the compact gain
//     (predecessor→successor replaces the two edges through SkipEligible).
//  3. Return the compact encoding when its gain is ≥ the expanded gain,
//     otherwise the expanded encoding.
//
// r is never modified.
//
// Errors: shape sentinels from Check, ErrBadSkip, ErrGainMatrix.
//
// Complexity: O(Length).
func Analyze(r Route, m matrix.Matrix) (Evaluation, error) {
	if err := checkShape(r); err != nil {
		return Evaluation{}, err
	}
	if err := matrix.ValidateSquare(m, Locations); err != nil {
		return Evaluation{}, fmt.Errorf("%w: %w", ErrGainMatrix, err)
	}

	expanded := r.Clone()
	if p := expanded.IndexOf(Skip); p >= 0 {
		expanded[p] = SkipEligible
		if expanded.Contains(Skip) {
			return Evaluation{}, ErrBadSkip
		}
	}

	without, err := PathGain(expanded, m)
	if err != nil {
		return Evaluation{}, err
	}

	k := expanded.IndexOf(SkipEligible)
	if k < 0 || !TriggerHolds(expanded) {
		return Evaluation{Gain: without, Route: expanded}, nil
	}

	compact := expanded.Clone()
	compact[k] = Skip
	with, err := contractedGain(compact, m)
	if err != nil {
		return Evaluation{}, err
	}
	if with >= without {
		return Evaluation{Gain: with, Route: compact, Contracted: true}, nil
	}

	return Evaluation{Gain: without, Route: expanded}, nil
}

// Evaluate runs Analyze and copies the winning encoding back into r.
// It returns the gain of that encoding.
func Evaluate(r Route, m matrix.Matrix) (float64, error) {
	ev, err := Analyze(r, m)
	if err != nil {
		return 0, err
	}
	copy(r, ev.Route)

	return ev.Gain, nil
}

// PathGain sums g[r[i]][r[i+1]] along r. The Skip marker is not allowed.
//
// Complexity: O(len(r)).
func PathGain(r Route, m matrix.Matrix) (float64, error) {
	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(r); i++ {
		if w, err = edgeGain(m, r[i], r[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// contractedGain sums the route with the Skip slot removed, so the edge
// from the location before the marker to the location after it is counted once.
func contractedGain(compact Route, m matrix.Matrix) (float64, error) {
	path := make(Route, 0, len(compact)-1)
	for _, v := range compact {
		if v != Skip {
			path = append(path, v)
		}
	}

	return PathGain(path, m)
}

// edgeGain reads the directed gain u→v (1-based codes) with strict checks.
func edgeGain(m matrix.Matrix, u, v Location) (float64, error) {
	if u < Start || u > Locations || v < Start || v > Locations {
		return 0, fmt.Errorf("edge %d->%d: %w", u, v, ErrUnknownLocation)
	}
	w, err := m.At(int(u)-1, int(v)-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGainMatrix, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("edge %d->%d: %w: %w", u, v, ErrGainMatrix, matrix.ErrNaNInf)
	}

	return w, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
