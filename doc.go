// Package samplableset provides a weighted samplable set: an associative
// container of distinct elements, each tagged with a strictly positive
// weight in a fixed range [wMin, wMax], supporting O(1) expected-time
// random sampling proportional to weight alongside O(1) expected-time
// insert, update, delete, and membership test.
//
// # What & Why
//
// Classic approaches trade one operation for another: a Fenwick/segment
// tree over all elements gives O(log N) sampling and O(log N) updates; a
// flat cumulative-weight array gives O(1) updates but O(N) sampling. This
// package instead buckets elements into O(log(wMax/wMin)) weight classes
// ("groups"), each spanning a single factor-of-two band, and combines:
//
//   - a small binary tree of per-group total weights (O(log G) selection,
//     G being the group count — effectively O(1) since G grows only as
//     log2 of the weight-range ratio, not as the element count), and
//   - per-group rejection sampling (O(1) expected, acceptance probability
//     bounded below by 1/2 thanks to the factor-of-two band).
//
// This is the composition-rejection scheme: composition picks a group
// proportional to its total weight, rejection picks an element within it.
//
// # Algorithms & Complexity (N = elements, G = groups)
//
//	Insert/Erase/SetWeight (same band)   O(1) expected
//	SetWeight (crossing a band boundary) O(1) expected (erase + insert)
//	GetWeight/Contains                   O(1)
//	Sample                               O(log G) tree descent + O(1) expected rejection
//	SampleN / iteration                  O(k) for k results, O(N) for a full pass
//
// # Determinism
//
//   - Sampling draws from an internal *rng seeded at construction (default
//     seed 42, documented, matching this package's reference
//     implementation); two sets built with the same seed and driven
//     through the same operation sequence produce identical sample
//     streams.
//   - Group assignment is a function of weight, plus a stable-hash jitter
//     for weights lying just below a band boundary (the weight's bit
//     pattern, XORed with the element's hash when a Hasher is configured);
//     it never depends on iteration or insertion order.
//
// # Options
//
//	type Option[E comparable] func(*config[E])
//	WithSeed[E comparable](seed uint64) Option[E]
//	WithHasher[E comparable](h Hasher[E]) Option[E]
//	WithLogger[E comparable](l logger) Option[E]
//
// SetWeightStrict is a separate method (not an Option) for callers that
// want ErrNotFound instead of insert-on-absent.
//
// # Errors (strict sentinels)
//
//	ErrInvalidRange, ErrOutOfRange, ErrNotFound, ErrEmpty, ErrIteratorExhausted
//
// Errors are never wrapped with fmt.Errorf where a sentinel suffices.
//
// # Concurrency
//
// A Set is a single-owner, synchronous structure: no internal locking, no
// goroutines, no I/O. Concurrent mutation from multiple goroutines is not
// supported and is not detected.
//
// See DESIGN.md for the grounding of each component in the package's
// reference implementation and its surrounding ecosystem.
package samplableset
