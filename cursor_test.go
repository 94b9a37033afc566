package samplableset

import "testing"

func TestSampleCursorWithoutReplacementDrainsSet(t *testing.T) {
	s, err := New[int](1, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.Insert(i, 1+float64(i)); err != nil {
			t.Fatal(err)
		}
	}

	c := s.SampleNIter(5, false)
	seen := make(map[int]bool)
	count := 0
	for p, ok := c.Next(); ok; p, ok = c.Next() {
		seen[p.Element] = true
		count++
	}
	if c.Err() != nil {
		t.Fatalf("unexpected cursor error: %v", c.Err())
	}
	if count != 5 || len(seen) != 5 {
		t.Fatalf("drained %d unique of 5 expected", len(seen))
	}
	if !s.Empty() {
		t.Fatalf("set should be empty after draining all elements without replacement")
	}
}

func TestSampleCursorStopsEarlyWhenSetEmpties(t *testing.T) {
	s, err := New[int](1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Insert(1, 2); err != nil {
		t.Fatal(err)
	}

	c := s.SampleNIter(5, false)
	count := 0
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 sample before the set emptied, got %d", count)
	}
	if c.Err() != ErrEmpty {
		t.Fatalf("Err() = %v, want ErrEmpty", c.Err())
	}
}

func TestSampleCursorWithReplacementLeavesSetIntact(t *testing.T) {
	s, err := New[int](1, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := s.Insert(i, 1+float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	c := s.SampleNIter(10, true)
	n := 0
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n++
	}
	if n != 10 {
		t.Fatalf("got %d draws, want 10", n)
	}
	if s.Len() != 3 {
		t.Fatalf("set mutated by sampling with replacement: len = %d, want 3", s.Len())
	}
}
