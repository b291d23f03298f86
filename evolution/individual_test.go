package evolution

import (
	"math"
	"math/rand"
	"testing"
)

func samplePoints() []Point {
	return []Point{{X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}, {X: 5, Y: 11}}
}

func TestNewIndividualFitnessIsPositiveAndFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := samplePoints()
	for i := 0; i < 100; i++ {
		ind := NewIndividual(points, rng)
		if ind.Fitness <= 0 || math.IsNaN(ind.Fitness) || math.IsInf(ind.Fitness, 0) {
			t.Fatalf("fitness %v not strictly positive and finite", ind.Fitness)
		}
	}
}

func TestConstantPredictorPenalized(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	points := samplePoints()

	constant := NewIndividual(points, rng)
	for attempt := 0; ; attempt++ {
		constant.Tree.DeleteFromIdx(0, rng)
		if !constant.Tree.HasVariable() {
			break
		}
		if attempt > 50 {
			t.Fatal("delete_from_idx(0) never produced a Number root in 50 attempts")
		}
	}
	constant.UpdateFitness(points)

	sConstant := minPositive
	for _, p := range points {
		e := p.Y - constant.Tree.Collapse(p.X)
		sConstant += e * e
	}
	sConstant *= 10
	want := 1 / sConstant
	if constant.Fitness != want {
		t.Fatalf("constant predictor fitness = %v, want %v (penalized)", constant.Fitness, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := samplePoints()
	ind := NewIndividual(points, rng)
	clone := ind.Clone()

	clone.Tree.DeleteFromIdx(0, rng)
	clone.UpdateFitness(points)

	if ind.Tree.Complexity() == 1 {
		t.Fatalf("original tree mutated through clone")
	}
}

func TestCrossOverElitismNeverRegresses(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	points := samplePoints()

	for i := 0; i < 100; i++ {
		a := NewIndividual(points, rng)
		b := NewIndividual(points, rng)
		aBefore, bBefore := a.Fitness, b.Fitness

		aAfter, bAfter := a.CrossOver(b, points, rng)

		if aAfter.Fitness < aBefore {
			t.Fatalf("pair (self, childA) regressed: %v < %v", aAfter.Fitness, aBefore)
		}
		if bAfter.Fitness < bBefore {
			t.Fatalf("pair (other, childB) regressed: %v < %v", bAfter.Fitness, bBefore)
		}
	}
}

func TestMutateRescoresAndKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	points := samplePoints()

	for i := 0; i < 100; i++ {
		ind := NewIndividual(points, rng)
		ind.Mutate(points, rng)

		if ind.Fitness <= 0 {
			t.Fatalf("fitness went non-positive after mutate")
		}
	}
}
