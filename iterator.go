// Package samplableset: the full-enumeration iterator — the
// iterate/init_iterator/current/advance primitives over a Set.
//
// Built as an explicit result/cursor struct rather than a channel or a
// goroutine-driven generator: no coroutines anywhere in this package.
package samplableset

// iterState is the iterator's cursor state machine:
// uninitialized -> positioned(g, i) -> end.
type iterState int

const (
	iterUninitialized iterState = iota
	iterPositioned
	iterEnd
)

// Iterator enumerates every current (element, weight) pair exactly once,
// in an unspecified but deterministic group-major, position-major order.
// It is not restartable: call Set.Iterator again for a fresh pass.
//
// Mutating the parent Set (Insert, SetWeight, Erase, Clear) while an
// Iterator is live invalidates it: subsequent Current calls return
// ErrIteratorExhausted and Advance calls do nothing, rather than silently
// walking stale state.
type Iterator[E comparable] struct {
	set       *Set[E]
	mutations uint64 // snapshot of set.mutations taken at creation
	state     iterState
	g, i      int
}

// Iterator returns a fresh cursor positioned at the first entry of the
// first non-empty group, or already at End if the set is empty.
//
// Complexity: O(G) worst case to skip empty groups, amortized O(1) per
// element over a full pass.
func (s *Set[E]) Iterator() *Iterator[E] {
	it := &Iterator[E]{set: s, mutations: s.mutations}
	it.seekNonEmpty()
	return it
}

func (it *Iterator[E]) seekNonEmpty() {
	for it.g < len(it.set.groups) && it.set.groups[it.g].len() == 0 {
		it.g++
	}
	if it.g >= len(it.set.groups) {
		it.state = iterEnd
		return
	}
	it.i = 0
	it.state = iterPositioned
}

func (it *Iterator[E]) stale() bool {
	return it.mutations != it.set.mutations
}

// Current returns the entry at the cursor, or ErrIteratorExhausted if the
// cursor is at End or the parent Set was mutated since this Iterator was
// obtained.
func (it *Iterator[E]) Current() (Pair[E], error) {
	if it.stale() {
		if ev := it.set.cfg.log.Warn(); ev != nil {
			ev.Msg("samplableset: iterator used after mutation of its set")
		}
		return Pair[E]{}, ErrIteratorExhausted
	}
	if it.state != iterPositioned {
		return Pair[E]{}, ErrIteratorExhausted
	}
	e := it.set.groups[it.g].at(it.i)
	return Pair[E]{Element: e.element, Weight: e.weight}, nil
}

// Advance steps to the next entry within the current group, then to the
// next non-empty group, or to End. A no-op once already at End or once
// the iterator has gone stale.
func (it *Iterator[E]) Advance() {
	if it.stale() || it.state != iterPositioned {
		return
	}
	it.i++
	if it.i >= it.set.groups[it.g].len() {
		it.g++
		it.seekNonEmpty()
	}
}

// Next combines Current and Advance for idiomatic `for p, ok :=
// it.Next(); ok; p, ok = it.Next()` loops.
func (it *Iterator[E]) Next() (Pair[E], bool) {
	p, err := it.Current()
	if err != nil {
		return Pair[E]{}, false
	}
	it.Advance()
	return p, true
}

// All drains a fresh Iterator eagerly into a slice of length Len(). It is
// the eager counterpart to the lazy Iterator/Next pair, for callers that
// just want every current (element, weight) pair at once.
//
// Complexity: O(N).
func (s *Set[E]) All() []Pair[E] {
	out := make([]Pair[E], 0, s.Len())
	for it := s.Iterator(); ; {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}
