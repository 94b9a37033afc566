// Package samplableset: Set — the assembly that owns the fixed-size
// vector of Groups, the PropensityTree over their totals, the global
// element -> group-index locator, and the RNG. This file orchestrates
// insert/erase/update/sample/iterate and is the only place that touches
// more than one of those pieces at once.
package samplableset

import "math"

// Set is a weighted samplable set over elements of type E. A zero Set is
// not usable; build one with New or FromPairs.
//
// Concurrency: single-owner, synchronous. No method is safe to call from
// more than one goroutine at a time, and none may run concurrently with
// an Iterator walking the same Set (see iterator.go).
type Set[E comparable] struct {
	wMin, wMax float64
	groups     []group[E]
	tree       propensityTree
	locator    map[E]int // element -> group index
	rng        *rng
	cfg        config[E]
	mutations  uint64 // bumped by Insert/SetWeight/Erase/Clear; invalidates iterators
}

// New constructs an empty Set over [wMin, wMax]. Fails with
// ErrInvalidRange if wMin <= 0, wMax < wMin, or either bound is
// non-finite.
//
// Complexity: O(G) where G = ceil(log2(wMax/wMin)) + 1.
func New[E comparable](wMin, wMax float64, opts ...Option[E]) (*Set[E], error) {
	if !validRange(wMin, wMax) {
		return nil, invalidRangef(wMin, wMax)
	}

	cfg := defaultConfig[E]()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := groupCount(wMin, wMax)
	groups := make([]group[E], g)
	for i := 0; i < g; i++ {
		lower := math.Ldexp(wMin, i)
		upper := math.Ldexp(wMin, i+1)
		groups[i] = newGroup[E](lower, upper)
	}

	s := &Set[E]{
		wMin:    wMin,
		wMax:    wMax,
		groups:  groups,
		tree:    newPropensityTree(g),
		locator: make(map[E]int),
		rng:     newRNG(cfg.seed),
		cfg:     cfg,
	}

	if e := s.cfg.log.Debug(); e != nil {
		e.Float64("w_min", wMin).Float64("w_max", wMax).Int("groups", g).Msg("samplableset: constructed")
	}
	return s, nil
}

// FromPairs constructs a Set and inserts every pair in order. Duplicate
// elements collapse: the last occurrence wins (via SetWeight semantics).
// Validation is eager and atomic: the first out-of-range weight aborts
// construction entirely and no partial Set is returned.
//
// Complexity: O(G + n) for n pairs.
func FromPairs[E comparable](wMin, wMax float64, pairs []Pair[E], opts ...Option[E]) (*Set[E], error) {
	s, err := New[E](wMin, wMax, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := s.SetWeight(p.Element, p.Weight); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func validRange(wMin, wMax float64) bool {
	if math.IsNaN(wMin) || math.IsNaN(wMax) || math.IsInf(wMin, 0) || math.IsInf(wMax, 0) {
		return false
	}
	return wMin > 0 && wMax >= wMin
}

// jitterSeed mixes the weight's bit pattern with the configured element
// Hasher (if any) to feed groupIndex's boundary tie-break.
func (s *Set[E]) jitterSeed(w float64, e E) uint64 {
	h := weightBitsHash(w)
	if s.cfg.hasher != nil {
		h ^= s.cfg.hasher.Sum64(e)
	}
	return h
}

func (s *Set[E]) groupFor(w float64, e E) int {
	return groupIndex(w, s.wMin, len(s.groups), s.jitterSeed(w, e))
}

// Insert adds (e, w). Returns false with no error and no change if e is
// already present. Returns ErrOutOfRange if w is outside [wMin, wMax].
//
// Complexity: O(1) expected.
func (s *Set[E]) Insert(e E, w float64) (bool, error) {
	if _, exists := s.locator[e]; exists {
		return false, nil
	}
	if w < s.wMin || w > s.wMax {
		return false, outOfRangef(w, s.wMin, s.wMax)
	}

	g := s.groupFor(w, e)
	s.groups[g].push(e, w)
	s.locator[e] = g
	s.tree.updateLeaf(g, w)
	s.mutations++
	return true, nil
}

// SetWeight sets e's weight to w, inserting e if it is not already
// present (see DESIGN.md "Open Questions resolved" for why insert-on-
// absent is the default instead of an error). Returns ErrOutOfRange if w
// is outside [wMin, wMax].
//
// Complexity: O(1) expected.
func (s *Set[E]) SetWeight(e E, w float64) error {
	if w < s.wMin || w > s.wMax {
		return outOfRangef(w, s.wMin, s.wMax)
	}

	gOld, exists := s.locator[e]
	if !exists {
		_, err := s.Insert(e, w)
		return err
	}

	pos := s.groups[gOld].indexOf[e]
	gNew := s.groupFor(w, e)

	if gNew == gOld {
		wOld := s.groups[gOld].at(pos).weight
		s.groups[gOld].setWeight(pos, w)
		s.tree.updateLeaf(gOld, w-wOld)
		s.mutations++
		return nil
	}

	// Crossing a band: erase from the old group, insert into the new one.
	// Single-owner/synchronous, so no other call can observe the set
	// between these two steps.
	s.removeAt(gOld, pos)
	s.groups[gNew].push(e, w)
	s.locator[e] = gNew
	s.tree.updateLeaf(gNew, w)
	s.mutations++
	return nil
}

// removeAt deletes the entry at (g, pos), fixing up the locator for any
// entry swap-remove relocates and updating the tree leaf for g. Does not
// touch the locator entry for the removed element itself — callers that
// are not immediately re-inserting it must delete(s.locator, e) too (see
// Erase).
func (s *Set[E]) removeAt(g, pos int) entry[E] {
	removed, movedElement, moved := s.groups[g].swapRemove(pos)
	if moved {
		s.locator[movedElement] = g
	}
	s.tree.updateLeaf(g, -removed.weight)
	return removed
}

// SetWeightStrict behaves like SetWeight but returns ErrNotFound instead
// of inserting when e is absent.
//
// Complexity: O(1) expected.
func (s *Set[E]) SetWeightStrict(e E, w float64) error {
	if _, exists := s.locator[e]; !exists {
		return ErrNotFound
	}
	return s.SetWeight(e, w)
}

// GetWeight returns e's current weight, or ErrNotFound if e is absent.
//
// Complexity: O(1).
func (s *Set[E]) GetWeight(e E) (float64, error) {
	g, exists := s.locator[e]
	if !exists {
		return 0, ErrNotFound
	}
	pos := s.groups[g].indexOf[e]
	return s.groups[g].at(pos).weight, nil
}

// Erase removes e. Returns ErrNotFound if e is absent.
//
// Complexity: O(1) expected.
func (s *Set[E]) Erase(e E) error {
	g, exists := s.locator[e]
	if !exists {
		return ErrNotFound
	}
	pos := s.groups[g].indexOf[e]
	s.removeAt(g, pos)
	delete(s.locator, e)
	s.mutations++
	return nil
}

// Contains reports whether e is currently in the set.
//
// Complexity: O(1).
func (s *Set[E]) Contains(e E) bool {
	_, exists := s.locator[e]
	return exists
}

// Len returns the number of elements currently in the set.
//
// Complexity: O(1).
func (s *Set[E]) Len() int { return len(s.locator) }

// TotalWeight returns the sum of every current entry's weight.
//
// Complexity: O(1).
func (s *Set[E]) TotalWeight() float64 { return s.tree.total() }

// Empty reports whether the set has no elements.
//
// Complexity: O(1).
func (s *Set[E]) Empty() bool { return len(s.locator) == 0 }

// Sample draws one element with probability proportional to its weight.
// Returns ErrEmpty if the set has no elements.
//
// Complexity: O(log G) + O(1) expected.
func (s *Set[E]) Sample() (Pair[E], error) {
	if s.Empty() {
		return Pair[E]{}, ErrEmpty
	}
	g := s.tree.sampleLeaf(s.rng)
	pos := s.groups[g].sample(s.rng)
	e := s.groups[g].at(pos)
	return Pair[E]{Element: e.element, Weight: e.weight}, nil
}

// SampleN draws up to n samples. With replace == true each draw is
// independent (the set is unchanged). With replace == false, each sampled
// element is erased before the next draw; if the set empties before n
// samples are produced, SampleN returns the samples gathered so far
// together with ErrEmpty (no silent partial success).
//
// Complexity: O(n) expected (plus O(log G) per draw).
func (s *Set[E]) SampleN(n int, replace bool) ([]Pair[E], error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]Pair[E], 0, n)
	for i := 0; i < n; i++ {
		p, err := s.Sample()
		if err != nil {
			return out, err
		}
		out = append(out, p)
		if !replace {
			if err := s.Erase(p.Element); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// Clear empties every group, zeroes the tree, and clears the locator. The
// RNG stream is left untouched, so sampling after Clear (once new
// elements are inserted) continues the same deterministic sequence —
// matching the reference implementation this package is grounded on,
// which never reseeds on clear.
//
// Complexity: O(G + n).
func (s *Set[E]) Clear() {
	n := s.Len()
	for i := range s.groups {
		s.groups[i] = newGroup[E](s.groups[i].lowerBound, s.groups[i].upperBound)
	}
	s.tree = newPropensityTree(len(s.groups))
	s.locator = make(map[E]int)
	s.mutations++

	if e := s.cfg.log.Info(); e != nil {
		e.Int("elements_dropped", n).Msg("samplableset: cleared")
	}
}
