package report

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/lteder/symboreg/evolution"
)

func sampleStats(generation int, populationSize int) evolution.GenerationStats {
	points := []evolution.Point{{X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}}
	rng := rand.New(rand.NewSource(99))
	individuals := make([]*evolution.Individual, populationSize)
	for i := range individuals {
		individuals[i] = evolution.NewIndividual(points, rng)
	}
	pop := evolution.NewPopulation(individuals)
	champion := pop.FindFittest()
	return evolution.GenerationStats{
		Generation:  generation,
		Evaluations: populationSize * (generation + 1),
		Champion:    champion,
		Challenger:  champion,
		Population:  pop,
	}
}

func TestReporterSilentAtLevelZero(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 0, 1)
	r.Generation(sampleStats(0, 4))
	if buf.Len() != 0 {
		t.Fatalf("expected no output at debug level 0, got %q", buf.String())
	}
}

func TestReporterCSVAtLevelOne(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, 1)
	r.Generation(sampleStats(0, 4))
	out := buf.String()
	if strings.Count(out, ",") != 3 {
		t.Fatalf("expected a 4-field CSV line, got %q", out)
	}
}

func TestReporterHonorsSkipInterval(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 1, 5)
	for g := 0; g < 4; g++ {
		r.Generation(sampleStats(g, 4))
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output before the skip interval elapses, got %q", buf.String())
	}
	r.Generation(sampleStats(4, 4))
	if buf.Len() == 0 {
		t.Fatal("expected output once the skip interval elapses (epoch 5)")
	}
}

func TestReporterHumanReadableAtLevelTwo(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 2, 1)
	r.Generation(sampleStats(0, 4))
	out := buf.String()
	if !strings.Contains(out, "champion") || !strings.Contains(out, "challenger") {
		t.Fatalf("expected champion/challenger labels, got %q", out)
	}
	if strings.Contains(out, "population") {
		t.Fatalf("did not expect a population dump at debug level 2, got %q", out)
	}
}

func TestReporterDumpsPopulationAtLevelThree(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 3, 1)
	r.Generation(sampleStats(0, 4))
	out := buf.String()
	if !strings.Contains(out, "population") {
		t.Fatalf("expected a population dump at debug level 3, got %q", out)
	}
	if strings.Count(out, "fitness=") < 5 {
		t.Fatalf("expected per-individual fitness lines in addition to the summary line, got %q", out)
	}
}

func TestSummaryReportsConfigAndCounters(t *testing.T) {
	var buf bytes.Buffer
	points := []evolution.Point{{X: 1, Y: 3}, {X: 2, Y: 5}}
	d, err := evolution.NewDriver(&evolution.SimConfig{
		Iterations:           2,
		PopulationSize:       10,
		CrossoverProbability: 0.8,
		MutationProbability:  0.01,
		Points:               points,
		RandomSeed:           1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.Run()

	r := New(&buf, 2, 1)
	r.Summary(d)
	out := buf.String()
	for _, want := range []string{"champion fitness", "crossovers", "mutations", "evaluations", "iterations", "population_size", "number_of_points"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected summary to mention %q, got %q", want, out)
		}
	}
}
