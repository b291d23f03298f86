package evolution

import "math/rand"

// Population is a fixed-length, ordered sequence of Individuals. The
// Driver asserts the length is divisible by both 2 and 10.
type Population struct {
	Individuals []*Individual
}

// NewPopulation wraps an existing slice of individuals.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{Individuals: individuals}
}

// RandomPopulation builds a population of n freshly spawned, scored
// individuals.
func RandomPopulation(n int, points []Point, rng *rand.Rand) *Population {
	individuals := make([]*Individual, n)
	for i := range individuals {
		individuals[i] = NewIndividual(points, rng)
	}
	return NewPopulation(individuals)
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.Individuals)
}

// FindFittest returns the individual with the highest fitness.
func (p *Population) FindFittest() *Individual {
	if len(p.Individuals) == 0 {
		return nil
	}
	best := p.Individuals[0]
	for _, ind := range p.Individuals[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}
