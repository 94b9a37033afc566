package samplableset

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	a := newRNG(42)
	b := newRNG(42)
	for i := 0; i < 50; i++ {
		if av, bv := a.nextU64(), b.nextU64(); av != bv {
			t.Fatalf("streams diverged at draw %d: %d != %d", i, av, bv)
		}
	}
}

func TestNewRNGDistinctSeedsDiverge(t *testing.T) {
	a := newRNG(1)
	b := newRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.nextU64() != b.nextU64() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("seed=1 and seed=2 produced identical streams")
	}
}

func TestUniform01Range(t *testing.T) {
	r := newRNG(3)
	for i := 0; i < 1000; i++ {
		u := r.uniform01()
		if u < 0 || u >= 1 {
			t.Fatalf("uniform01() = %v, want [0, 1)", u)
		}
	}
}

func TestUniformNRange(t *testing.T) {
	r := newRNG(3)
	for i := 0; i < 1000; i++ {
		n := r.uniformN(7)
		if n < 0 || n >= 7 {
			t.Fatalf("uniformN(7) = %d, want [0, 7)", n)
		}
	}
}

func TestSplitMix64SeedZeroNotDegenerate(t *testing.T) {
	if splitMix64(0) == 0 {
		t.Fatalf("splitMix64(0) should not mix to 0")
	}
}
