// Package route - constraint validator.
//
// Check enforces, in order:
//  1. Shape: len==Length, r[0]==r[Length-1]==Start, interior codes in {0,2..Locations}.
//  2. Ordering: OrderFirst is never immediately followed by OrderSecond.
//  3. Position: if LateHalf is present, its index is ≥ MinLateIndex.
//  4. Uniqueness over the interior; the Skip marker is exempt, but at most one
//     may exist and only while SkipEligible itself is absent.
//
// Design:
//   - Pure, allocation-free (fixed-size marker array), O(Length).
//   - The first violated rule wins; the sentinel is wrapped with the index.
package route

import "fmt"

// IsValid reports whether r satisfies every route rule.
func IsValid(r Route) bool { return Check(r) == nil }

// Check returns nil for a valid route, otherwise the first violated rule.
//
// Complexity: O(len(r)) time, O(1) space.
func Check(r Route) error {
	if err := checkShape(r); err != nil {
		return err
	}

	var i int

	// Ordering rule.
	for i = 0; i+1 < len(r); i++ {
		if r[i] == OrderFirst && r[i+1] == OrderSecond {
			return fmt.Errorf("index %d: %w", i+1, ErrOrdering)
		}
	}

	// Positional rule.
	if i = r.IndexOf(LateHalf); i >= 0 && i < MinLateIndex {
		return fmt.Errorf("index %d < %d: %w", i, MinLateIndex, ErrPosition)
	}

	// Uniqueness over the open interior.
	var (
		seen  [Locations + 1]bool
		skips int
		v     Location
	)
	for i = 1; i < len(r)-1; i++ {
		v = r[i]
		if v == Skip {
			skips++
			continue
		}
		if seen[v] {
			return fmt.Errorf("index %d (location %d): %w", i, v, ErrDuplicate)
		}
		seen[v] = true
	}
	if skips > 1 || (skips == 1 && seen[SkipEligible]) {
		return ErrBadSkip
	}

	return nil
}

// checkShape validates length, endpoints and the code range.
func checkShape(r Route) error {
	if len(r) != Length {
		return fmt.Errorf("len=%d: %w", len(r), ErrBadLength)
	}
	if r[0] != Start || r[len(r)-1] != Start {
		return ErrBadEndpoints
	}

	var i int
	for i = 1; i < len(r)-1; i++ {
		if r[i] < Skip || r[i] > Locations || r[i] == Start {
			return fmt.Errorf("index %d (code %d): %w", i, r[i], ErrUnknownLocation)
		}
	}

	return nil
}
