// Package route: sentinel error set.
//
// Check returns exactly one of the rule sentinels below (wrapped with the
// offending index) so callers can branch with errors.Is.
package route

import "errors"

var (
	// ErrBadLength is returned when a route does not have Length elements.
	ErrBadLength = errors.New("route: wrong length")

	// ErrBadEndpoints is returned when the first or last element is not Start.
	ErrBadEndpoints = errors.New("route: must start and end at the start location")

	// ErrUnknownLocation is returned for codes outside 0..Locations, or Start in the interior.
	ErrUnknownLocation = errors.New("route: unknown location code")

	// ErrOrdering is returned when OrderFirst is immediately followed by OrderSecond.
	ErrOrdering = errors.New("route: ordering rule violated")

	// ErrPosition is returned when LateHalf sits in the first half of the route.
	ErrPosition = errors.New("route: positional rule violated")

	// ErrDuplicate is returned when an interior location occurs more than once.
	ErrDuplicate = errors.New("route: duplicate location")

	// ErrBadSkip is returned for more than one Skip marker, or a Skip marker
	// alongside the location it stands for.
	ErrBadSkip = errors.New("route: inconsistent skip marker")

	// ErrGainMatrix is returned when the gain matrix has the wrong shape or
	// non-finite transition entries.
	ErrGainMatrix = errors.New("route: invalid gain matrix")
)
