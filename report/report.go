// Package report formats the Driver's progress and final summary for the
// command line, gated by a debug level and a generation-skip interval.
package report

import (
	"fmt"
	"io"

	"github.com/lteder/symboreg/evolution"
)

// Reporter prints generation-by-generation progress and a final summary,
// per the debug_level/skip convention of the specification file:
//
//	0: silent except the final summary
//	1: one CSV line per skip generations: epoch, evaluations,
//	   champion_fitness, challenger_fitness
//	2+: human-readable champion/challenger listings
//	3: additionally dumps the full population
type Reporter struct {
	Out        io.Writer
	DebugLevel int
	Skip       int
}

// New builds a Reporter writing to out.
func New(out io.Writer, debugLevel, skip int) *Reporter {
	if skip < 1 {
		skip = 1
	}
	return &Reporter{Out: out, DebugLevel: debugLevel, Skip: skip}
}

// Generation reports one completed generation, honoring the skip interval.
func (r *Reporter) Generation(stats evolution.GenerationStats) {
	epoch := stats.Generation + 1
	if r.DebugLevel <= 0 {
		return
	}
	if epoch%r.Skip != 0 {
		return
	}

	if r.DebugLevel == 1 {
		fmt.Fprintf(r.Out, "%d,%d,%g,%g\n",
			epoch, stats.Evaluations, stats.Champion.Fitness, stats.Challenger.Fitness)
		return
	}

	fmt.Fprintf(r.Out, "#%d champion fitness=%g complexity=%d | challenger fitness=%g complexity=%d\n",
		epoch,
		stats.Champion.Fitness, stats.Champion.Tree.Complexity(),
		stats.Challenger.Fitness, stats.Challenger.Tree.Complexity())

	if r.DebugLevel >= 3 {
		fmt.Fprintf(r.Out, "  population (%d individuals):\n", stats.Population.Size())
		for i, ind := range stats.Population.Individuals {
			fmt.Fprintf(r.Out, "    [%d] fitness=%g complexity=%d\n", i, ind.Fitness, ind.Tree.Complexity())
		}
	}
}

// Summary prints the final champion and run statistics.
func (r *Reporter) Summary(d *evolution.Driver) {
	fmt.Fprintln(r.Out, "--------------- STATS ---------------")
	fmt.Fprintf(r.Out, "champion fitness: %g\n", d.Champion.Fitness)
	fmt.Fprintf(r.Out, "champion complexity: %d\n", d.Champion.Tree.Complexity())
	fmt.Fprintf(r.Out, "crossovers: %d\n", d.NumberOfCrossovers)
	fmt.Fprintf(r.Out, "mutations: %d\n", d.NumberOfMutations)
	fmt.Fprintf(r.Out, "evaluations: %d\n", d.Evaluations)
	fmt.Fprintln(r.Out, "--------------- SPECS ---------------")
	fmt.Fprintf(r.Out, "iterations: %d\n", d.Config.Iterations)
	fmt.Fprintf(r.Out, "population_size: %d\n", d.Config.PopulationSize)
	fmt.Fprintf(r.Out, "crossover_probability: %g\n", d.Config.CrossoverProbability)
	fmt.Fprintf(r.Out, "mutation_probability: %g\n", d.Config.MutationProbability)
	fmt.Fprintf(r.Out, "number_of_points: %d\n", len(d.Config.Points))
}
