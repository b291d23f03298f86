// Package main provides the symboreg CLI: symbolic regression via genetic
// programming over a dataset of observed (x, y) pairs.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lteder/symboreg/evolution"
	"github.com/lteder/symboreg/ioformat"
	"github.com/lteder/symboreg/report"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Please specify a spec file and a dataset file.")
		fmt.Fprintln(os.Stderr, "USAGE: symboreg <specs.csv> <points.csv>")
		os.Exit(1)
	}
	specPath, pointsPath := os.Args[1], os.Args[2]

	spec, err := ioformat.ReadSpecFile(specPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	points, err := ioformat.ReadDataset(pointsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printBanner(spec, pointsPath)

	config := &evolution.SimConfig{
		Iterations:           spec.Iterations,
		PopulationSize:       spec.PopulationSize,
		CrossoverProbability: spec.CrossoverProbability,
		MutationProbability:  spec.MutationProbability,
		Points:               points,
		Verbose:              spec.DebugLevel >= 2,
	}

	driver, err := evolution.NewDriver(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rep := report.New(os.Stdout, spec.DebugLevel, spec.Skip)
	driver.OnGenerationComplete = rep.Generation

	start := time.Now()
	driver.Run()
	elapsed := time.Since(start)

	rep.Summary(driver)
	fmt.Printf("total time: %s\n", elapsed)
}

func printBanner(spec ioformat.SimSpec, pointsPath string) {
	fmt.Println("symboreg: symbolic regression via genetic programming")
	fmt.Printf("dataset:          %s\n", pointsPath)
	fmt.Printf("iterations:       %d\n", spec.Iterations)
	fmt.Printf("population_size:  %d\n", spec.PopulationSize)
	fmt.Printf("crossover_prob:   %g\n", spec.CrossoverProbability)
	fmt.Printf("mutation_prob:    %g\n", spec.MutationProbability)
	fmt.Println()
}
