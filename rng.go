// Package samplableset - RNG utilities for the sampling core.
//
// This file centralizes deterministic random generation used by
// PropensityTree.sampleLeaf and group.sample.
//
// Goals:
//   - Determinism: same seed => identical sample sequences across runs.
//   - Encapsulation: a single RNG type; no time-based sources hidden anywhere.
//   - Safety: no panics; uniform01 always returns a value in [0, 1).
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. A Set owns exactly one rng and is
//     itself single-owner (see doc.go); do not share an rng across Sets
//     unless correlated streams are intentional.
package samplableset

import "math/rand"

// defaultSeed is the documented default used when no seed is supplied.
// Matches the reference implementation's own documented default.
const defaultSeed uint64 = 42

// rng wraps a *rand.Rand with the two primitives the core needs.
type rng struct {
	r *rand.Rand
}

// newRNG builds a deterministic rng from seed. seed==0 is a legitimate,
// distinct stream from defaultSeed — callers that want the documented
// default must pass defaultSeed explicitly (New does this when no
// WithSeed option is supplied).
//
// Complexity: O(1).
func newRNG(seed uint64) *rng {
	return &rng{r: rand.New(rand.NewSource(splitMix64(seed)))}
}

// splitMix64 mixes a raw seed through the canonical SplitMix64 finalizer
// before handing it to math/rand, so that closely-spaced seeds (0, 1, 2,
// ...) still produce well-decorrelated streams.
//
// Complexity: O(1).
func splitMix64(seed uint64) int64 {
	x := seed + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// nextU64 returns 64 uniform random bits.
//
// Complexity: O(1).
func (g *rng) nextU64() uint64 {
	return g.r.Uint64()
}

// uniform01 returns a uniform float64 in [0, 1).
//
// Complexity: O(1).
func (g *rng) uniform01() float64 {
	return g.r.Float64()
}

// uniformN returns a uniform integer in [0, n). n must be > 0.
//
// Complexity: O(1).
func (g *rng) uniformN(n int) int {
	return g.r.Intn(n)
}
