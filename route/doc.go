// Package route models closed geo-farming routes over the ten map areas and
// the rules every route must obey.
//
// A Route is an 11-element sequence [1, a1..a9, 1]: it starts and ends at
// Dirtmouth (1) and visits the other nine areas (2..10) exactly once. One
// interior slot may hold the Skip marker (0) instead of King's Station (7)
// when Queen's Station (4) is immediately followed by Distant Village (9);
// the route then travels directly from the area before the marker to the
// area after it.
//
// The package provides:
//
//   - Check / IsValid: the constraint validator (ordering, positional and
//     uniqueness rules plus shape checks).
//   - Analyze / Evaluate: the two-hypothesis gain evaluator that decides
//     whether the compact (skip) encoding is worth adopting.
//   - FixPlaceholder: restores King's Station when the trigger adjacency is
//     broken by a genetic operator.
//   - Interior / WithEndpoints: strip and restore the fixed start/end.
//   - Initials: area initials for reporting.
//
// All functions are deterministic and never panic on user input; failures are
// reported through the sentinels in errors.go.
package route
