// Package gridsearch evaluates every combination of a parameter grid with
// repeated ga.Run calls and reports the combination with the highest average
// best fitness.
//
// Runs are independent: each owns a clone of the gain matrix and an RNG
// stream seeded with ga.DeriveSeed(combination seed, run index). They are
// spread over a bounded errgroup worker pool; result order does not depend
// on scheduling, so a search is reproducible for any worker count.
//
// The first failing run cancels the rest and its error is returned.
package gridsearch
