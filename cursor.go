// Package samplableset: SampleCursor — the lazy counterpart to SampleN:
// an explicit cursor struct carrying a reference to the Set and
// advancing on demand, not a goroutine-backed generator.
package samplableset

// SampleCursor produces up to n samples on demand via repeated Next
// calls. With replace == false, each produced element is erased from the
// owning Set before the next Next call, so the cursor and the Set it was
// built from must not be read independently while the cursor is live.
type SampleCursor[E comparable] struct {
	set      *Set[E]
	replace  bool
	remaining int
	done     bool
	err      error
}

// SampleNIter returns a lazy cursor that yields up to n samples. Drive it
// with Next; it terminates (ok == false) once n samples have been
// produced, or early with Err() == ErrEmpty if replace == false and the
// set empties first.
func (s *Set[E]) SampleNIter(n int, replace bool) *SampleCursor[E] {
	if n < 0 {
		n = 0
	}
	return &SampleCursor[E]{set: s, replace: replace, remaining: n}
}

// Next produces the next sample. ok is false once the cursor is
// exhausted, either because n samples were produced or because the
// underlying Set ran out (check Err in that case).
func (c *SampleCursor[E]) Next() (p Pair[E], ok bool) {
	if c.done || c.remaining <= 0 {
		return Pair[E]{}, false
	}
	p, err := c.set.Sample()
	if err != nil {
		c.err = err
		c.done = true
		return Pair[E]{}, false
	}
	if !c.replace {
		if err := c.set.Erase(p.Element); err != nil {
			c.err = err
			c.done = true
			return Pair[E]{}, false
		}
	}
	c.remaining--
	return p, true
}

// Err returns the error that stopped the cursor early (ErrEmpty), or nil
// if the cursor has not stopped early (including the normal case of
// having produced all n requested samples).
func (c *SampleCursor[E]) Err() error { return c.err }
