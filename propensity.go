// Package samplableset: PropensityTree — a dense, non-recursive
// complete binary tree of partial sums over group total weights.
//
// Layout follows the classic implicit segment-tree convention: leaves
// occupy tree[cap:2*cap] (cap = next power of two >= leafCount, zero-
// padded), internal nodes occupy tree[1:cap], and tree[0] is unused so
// that a node's children sit at 2*i and 2*i+1.
package samplableset

// propensityTree is the binary tree of group-total sums used to select a
// group in O(log G) (G = leaf count, i.e. group count).
type propensityTree struct {
	cap  int       // number of leaf slots, a power of two >= leafCount
	tree []float64 // len == 2*cap; tree[0] unused
}

// newPropensityTree builds a tree with leafCount leaves, all zero.
//
// Complexity: O(leafCount).
func newPropensityTree(leafCount int) propensityTree {
	cap := nextPow2(leafCount)
	if cap < 1 {
		cap = 1
	}
	return propensityTree{cap: cap, tree: make([]float64, 2*cap)}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// total returns the root sum, i.e. the sum of every leaf.
//
// Complexity: O(1).
func (t *propensityTree) total() float64 { return t.tree[1] }

// updateLeaf adds delta (possibly negative) to leaf g and recomputes
// every internal node on the path to the root directly from its two
// children (not by propagating delta), bounding floating-point drift
// that delta-propagation would otherwise accumulate over many updates.
//
// Complexity: O(log cap).
func (t *propensityTree) updateLeaf(g int, delta float64) {
	i := t.cap + g
	t.tree[i] += delta
	for i > 1 {
		i >>= 1
		t.tree[i] = t.tree[2*i] + t.tree[2*i+1]
	}
}

// sampleLeaf draws u uniformly in [0, total()) and descends from the
// root, going left while u < leftSum, else subtracting leftSum and going
// right. Returns the reached leaf index.
//
// Undefined if total() == 0; callers must check emptiness first.
//
// Complexity: O(log cap).
func (t *propensityTree) sampleLeaf(r *rng) int {
	u := r.uniform01() * t.total()
	i := 1
	for i < t.cap {
		left := 2 * i
		if u < t.tree[left] {
			i = left
		} else {
			u -= t.tree[left]
			i = left + 1
		}
	}
	return i - t.cap
}
