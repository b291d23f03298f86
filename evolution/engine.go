package evolution

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// SimConfig holds the parameters of an evolutionary run.
type SimConfig struct {
	Iterations           int     // Number of generations to run
	PopulationSize       int     // Must be divisible by both 2 and 10
	CrossoverProbability float64 // Probability a drawn parent pair is crossed
	MutationProbability  float64 // Probability a child is mutated, independently
	Points               []Point // Observed dataset the population is scored against
	RandomSeed           int64   // Random seed (0 = use time)
	Verbose              bool    // Enable progress logging
}

// GenerationStats holds statistics for a single completed generation,
// including the generation's own fittest individual (the "challenger")
// alongside the champion carried across all generations so far.
type GenerationStats struct {
	Generation  int
	BestFitness float64
	Crossovers  int
	Mutations   int
	Evaluations int
	Timestamp   time.Time

	Champion   *Individual
	Challenger *Individual
	Population *Population
}

// Driver owns the dataset and evolution parameters, produces successive
// generations, tracks the champion, and counts events.
type Driver struct {
	Config     *SimConfig
	Population *Population
	Champion   *Individual
	Rng        *rand.Rand

	NumberOfCrossovers int
	NumberOfMutations  int
	Evaluations        int

	StatsHistory []GenerationStats

	// OnGenerationComplete is called once per generation, after the
	// population has been replaced and the champion updated.
	OnGenerationComplete func(stats GenerationStats)
}

// NewDriver validates config and builds the initial random population.
func NewDriver(config *SimConfig) (*Driver, error) {
	if config.PopulationSize%2 != 0 || config.PopulationSize%10 != 0 {
		return nil, fmt.Errorf("population size %d must be divisible by 2 and 10", config.PopulationSize)
	}

	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Driver{
		Config:       config,
		Rng:          rng,
		StatsHistory: make([]GenerationStats, 0, config.Iterations),
	}

	if config.Verbose {
		log.Printf("Seeding population of %d individuals", config.PopulationSize)
	}
	d.Population = RandomPopulation(config.PopulationSize, config.Points, rng)
	d.Evaluations += config.PopulationSize
	d.Champion = d.Population.FindFittest().Clone()

	return d, nil
}

// RunGeneration advances the population by exactly one generation:
//  1. Build cumulative weights from current fitnesses.
//  2. Repeat PopulationSize/2 times: draw a parent pair; with probability
//     CrossoverProbability produce children by crossover, otherwise clone
//     the parents; then, with probability MutationProbability, mutate each
//     child independently. A depth-1 parent is grown to depth 2 first.
//  3. Replace the population with the concatenation of the generated pairs.
//  4. Update the champion across champion and the new population.
func (d *Driver) RunGeneration(generation int) GenerationStats {
	cfg := d.Config
	weights := GetCumulativeWeights(d.Population)

	next := make([]*Individual, 0, cfg.PopulationSize)
	for i := 0; i < cfg.PopulationSize/2; i++ {
		mi, di := SelectParents(weights, d.Rng)
		mother := d.Population.Individuals[mi]
		father := d.Population.Individuals[di]

		var childA, childB *Individual
		if d.Rng.Float64() < cfg.CrossoverProbability {
			childA, childB = mother.CrossOver(father, cfg.Points, d.Rng)
			d.NumberOfCrossovers += 2
		} else {
			childA, childB = mother.Clone(), father.Clone()
		}

		if d.Rng.Float64() < cfg.MutationProbability {
			childA.Mutate(cfg.Points, d.Rng)
			d.NumberOfMutations++
		}
		if d.Rng.Float64() < cfg.MutationProbability {
			childB.Mutate(cfg.Points, d.Rng)
			d.NumberOfMutations++
		}

		next = append(next, childA, childB)
	}

	d.Population = NewPopulation(next)
	d.Evaluations += len(next)

	challenger := d.Population.FindFittest()
	if challenger.Fitness > d.Champion.Fitness {
		d.Champion = challenger.Clone()
	}

	stats := GenerationStats{
		Generation:  generation,
		BestFitness: d.Champion.Fitness,
		Crossovers:  d.NumberOfCrossovers,
		Mutations:   d.NumberOfMutations,
		Evaluations: d.Evaluations,
		Timestamp:   time.Now(),
		Champion:    d.Champion,
		Challenger:  challenger,
		Population:  d.Population,
	}
	d.StatsHistory = append(d.StatsHistory, stats)

	if d.OnGenerationComplete != nil {
		d.OnGenerationComplete(stats)
	}
	if cfg.Verbose {
		log.Printf("Generation %d/%d: champion fitness %.6g", generation+1, cfg.Iterations, d.Champion.Fitness)
	}

	return stats
}

// Run advances the driver through Config.Iterations generations and
// returns the champion.
func (d *Driver) Run() *Individual {
	for g := 0; g < d.Config.Iterations; g++ {
		d.RunGeneration(g)
	}
	return d.Champion
}
