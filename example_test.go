package samplableset_test

import (
	"fmt"

	samplableset "github.com/katalvlaran/samplableset"
)

// ExampleSet_Sample builds a small weighted set and draws from it with a
// fixed seed so the output is reproducible.
func ExampleSet_Sample() {
	s, err := samplableset.New[string](1, 100, samplableset.WithSeed[string](42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = s.Insert("common", 90)
	_, _ = s.Insert("rare", 1)

	p, err := s.Sample()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Element != "")
	// Output:
	// true
}

// ExampleSet_Iterator walks every current (element, weight) pair.
func ExampleSet_Iterator() {
	s, err := samplableset.New[string](1, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = s.Insert("a", 2)
	_, _ = s.Insert("b", 5)

	total := 0.0
	it := s.Iterator()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		total += p.Weight
	}
	fmt.Println(total)
	// Output:
	// 7
}

// ExampleSet_SampleN drains a set without replacement, collecting every
// element exactly once.
func ExampleSet_SampleN() {
	s, err := samplableset.New[int](1, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 5; i++ {
		_, _ = s.Insert(i, 1+float64(i))
	}

	out, err := s.SampleN(5, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(out), s.Empty())
	// Output:
	// 5 true
}
