package samplableset

import (
	"fmt"
	"testing"
)

// BenchmarkInsert measures Insert into a Set pre-populated to size N.
func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{100, 10_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			s, err := New[int](1, 1e6)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				if _, err := s.Insert(i, 1+float64(i%1000)); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportAllocs()
			b.SetBytes(int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.Insert(n+i, 1+float64(i%1000))
				_ = s.Erase(n + i)
			}
		})
	}
}

// BenchmarkSample measures Sample's O(log G) + O(1) expected cost at
// increasing set sizes.
func BenchmarkSample(b *testing.B) {
	for _, n := range []int{100, 10_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			s, err := New[int](1, 1e6, WithSeed[int](42))
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				if _, err := s.Insert(i, 1+float64(i%1000)); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportAllocs()
			b.SetBytes(int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = s.Sample()
			}
		})
	}
}

// BenchmarkIterateAll measures a full traversal via All() at increasing set
// sizes.
func BenchmarkIterateAll(b *testing.B) {
	for _, n := range []int{100, 10_000, 1_000_000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			s, err := New[int](1, 1e6)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < n; i++ {
				if _, err := s.Insert(i, 1+float64(i%1000)); err != nil {
					b.Fatal(err)
				}
			}
			b.ReportAllocs()
			b.SetBytes(int64(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.All()
			}
		})
	}
}

// BenchmarkSetWeightCrossGroup measures the more expensive SetWeight path
// that relocates an element across weight bands.
func BenchmarkSetWeightCrossGroup(b *testing.B) {
	s, err := New[int](1, 1e6, WithSeed[int](42))
	if err != nil {
		b.Fatal(err)
	}
	if _, err := s.Insert(0, 2); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := 2.0
		if i%2 == 0 {
			w = 500000
		}
		if err := s.SetWeight(0, w); err != nil {
			b.Fatal(err)
		}
	}
}
