package samplableset

import "math"

// edgeEps bounds how close w/wMin must be to an exact power-of-two ratio
// before the hash-jitter rule (below) is consulted. Outside this band the
// exponent computation is unambiguous and jitter never fires.
const edgeEps = 1e-9

// groupCount returns G = ceil(log2(wMax/wMin)) + 1, the number of weight
// bands a set over [wMin, wMax] is partitioned into. wMin, wMax are
// assumed already validated (wMin > 0, wMax >= wMin, both finite).
//
// Complexity: O(1).
func groupCount(wMin, wMax float64) int {
	if wMax <= wMin {
		return 1
	}
	g := int(math.Ceil(math.Log2(wMax/wMin))) + 1
	if g < 1 {
		g = 1
	}
	return g
}

// groupIndex maps a weight to a group index g such that
// 2^g*wMin <= w < 2^(g+1)*wMin, clamped to [0, groups).
//
// jitterSeed is a caller-supplied 64-bit value used only to break ties
// when log2(w/wMin) falls within edgeEps below an integer, i.e. when
// floating-point noise in computing w/wMin may have put a weight lying on
// a band edge just under it. Such a weight goes to the group below the
// edge when the low bit of jitterSeed is 0 and to the group above it when
// the bit is 1. Passing weightBitsHash(w) (optionally XORed with an
// element hash) spreads those near-edge weights across both groups that
// meet at the edge. A weight whose ratio is exactly a power of two, or
// lies just above one, always goes to the band it opens, and no weight
// that is not near a boundary is affected.
//
// Monotone nondecreasing in w except within the edgeEps neighborhood
// below a boundary, where either of the two groups meeting at that
// boundary may be chosen.
//
// Complexity: O(1).
func groupIndex(w, wMin float64, groups int, jitterSeed uint64) int {
	if groups <= 1 {
		return 0
	}
	if w <= wMin {
		return 0
	}

	ratio := w / wMin
	exp := math.Log2(ratio)
	g := int(math.Floor(exp))
	frac := exp - math.Floor(exp)

	if frac > 1-edgeEps && jitterSeed&1 == 1 {
		g++
	}

	if g < 0 {
		g = 0
	}
	if g > groups-1 {
		g = groups - 1
	}
	return g
}
