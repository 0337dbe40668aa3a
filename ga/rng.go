// Package ga - RNG utilities shared by every stochastic operator.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSeed to create independent streams for parallel runs.
package ga

import (
	"math/rand"

	"github.com/katalvlaran/georoute/route"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so neighbouring streams are decorrelated.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// orDefault returns rng, or the seed==0 stream when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRNG(0)
	}

	return rng
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a route.Route, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// sampleDistinct draws k distinct indices from [0..n) uniformly without
// replacement (partial Fisher–Yates). k is clamped to n.
//
// Complexity: O(n) time and space.
func sampleDistinct(rng *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}

// orderedPair returns two distinct indices i<j from [0..n). Requires n>=2.
func orderedPair(rng *rand.Rand, n int) (int, int) {
	p := sampleDistinct(rng, n, 2)
	if p[0] > p[1] {
		return p[1], p[0]
	}

	return p[0], p[1]
}
