package evolution

import (
	"math"
	"math/rand"
	"testing"
)

func TestGetCumulativeWeights(t *testing.T) {
	pop := NewPopulation([]*Individual{{Fitness: 1}, {Fitness: 2}, {Fitness: 3}})
	c := GetCumulativeWeights(pop)
	if len(c) != 4 {
		t.Fatalf("expected length 4, got %d", len(c))
	}
	if c[0] != minPositive {
		t.Fatalf("C[0] should be minPositive, got %v", c[0])
	}
	want := []float64{minPositive, 1 + minPositive, 3 + minPositive, 6 + minPositive}
	for i, w := range want {
		if math.Abs(c[i]-w) > 1e-12 {
			t.Fatalf("C[%d] = %v, want %v", i, c[i], w)
		}
	}
}

// TestSelectIndexEmpiricalProportions is P6/E4: with weights 1, 2, 3 the
// empirical draw distribution should converge to 1/6, 2/6, 3/6.
func TestSelectIndexEmpiricalProportions(t *testing.T) {
	c := []float64{minPositive, 1 + minPositive, 3 + minPositive, 6 + minPositive}
	rng := rand.New(rand.NewSource(11))

	const samples = 200_000
	var counts [3]int
	for i := 0; i < samples; i++ {
		idx := SelectIndex(c, rng)
		counts[idx]++
	}

	want := []float64{1.0 / 6, 2.0 / 6, 3.0 / 6}
	for i, w := range want {
		got := float64(counts[i]) / float64(samples)
		if math.Abs(got-w) > 0.01 {
			t.Fatalf("bucket %d proportion = %v, want ~%v", i, got, w)
		}
	}
}

func TestSelectParentsDrawsWithinRange(t *testing.T) {
	pop := NewPopulation([]*Individual{{Fitness: 1}, {Fitness: 2}, {Fitness: 3}})
	c := GetCumulativeWeights(pop)
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		m, d := SelectParents(c, rng)
		if m < 0 || m >= pop.Size() || d < 0 || d >= pop.Size() {
			t.Fatalf("parent index out of range: m=%d d=%d", m, d)
		}
	}
}
