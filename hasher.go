package samplableset

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher produces an unsigned 64-bit hash for an element of type E. It
// should minimize collisions and stay fast; cryptographic strength is not
// required. Implementations must be deterministic: equal elements must
// hash identically across calls and across process runs.
//
// Modeled on the consistent-hashing Hasher interface used for bucket
// assignment (Sum64([]byte) uint64), generalized over E.
type Hasher[E any] interface {
	Sum64(e E) uint64
}

// hasherFunc adapts a plain function to the Hasher interface.
type hasherFunc[E any] func(E) uint64

func (f hasherFunc[E]) Sum64(e E) uint64 { return f(e) }

// XXHasher returns a Hasher backed by xxhash over a caller-supplied byte
// encoding of E. Passed to WithHasher, it feeds element identity into
// groupIndex's hash-based boundary perturbation (see groupindex.go).
// StringHasher, IntHasher and Int64Hasher below are ready-made XXHashers
// for the built-in kinds; a Set uses none of them unless WithHasher is
// given one.
func XXHasher[E any](encode func(E) []byte) Hasher[E] {
	return hasherFunc[E](func(e E) uint64 {
		return xxhash.Sum64(encode(e))
	})
}

// StringHasher is a ready-made Hasher for string elements.
func StringHasher() Hasher[string] {
	return XXHasher(func(s string) []byte { return []byte(s) })
}

// IntHasher is a ready-made Hasher for int elements.
func IntHasher() Hasher[int] {
	return XXHasher(func(i int) []byte {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		return buf[:]
	})
}

// Int64Hasher is a ready-made Hasher for int64 elements.
func Int64Hasher() Hasher[int64] {
	return XXHasher(func(i int64) []byte {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		return buf[:]
	})
}

// weightBitsHash mixes a weight's raw bit pattern through xxhash. Used as
// the fallback jitter source when a Set carries no element Hasher (see
// groupIndex): it still spreads adversarial weight clustering across a
// band boundary, just without folding in element identity.
func weightBitsHash(w float64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(w))
	return xxhash.Sum64(buf[:])
}
