package evolution

import "math/rand"

// GetCumulativeWeights returns C where C[0] = minPositive and each
// subsequent entry adds the next individual's fitness, so C[n] is the
// total fitness mass and C is non-decreasing.
func GetCumulativeWeights(pop *Population) []float64 {
	c := make([]float64, len(pop.Individuals)+1)
	c[0] = minPositive
	for i, ind := range pop.Individuals {
		c[i+1] = c[i] + ind.Fitness
	}
	return c
}

// SelectIndex implements fitness-proportional (roulette) selection: draw
// r in [0, C[n]) uniformly and return the largest i with C[i] < r. If no
// such i exists (a degenerate C), fall back to a uniformly random index.
func SelectIndex(c []float64, rng *rand.Rand) int {
	n := len(c) - 1
	total := c[n]
	r := rng.Float64() * total

	found := -1
	for i := n; i >= 0; i-- {
		if c[i] < r {
			found = i
			break
		}
	}
	if found < 0 || found >= n {
		return rng.Intn(n)
	}
	return found
}

// SelectParents draws two independent parent indices via SelectIndex.
func SelectParents(c []float64, rng *rand.Rand) (int, int) {
	return SelectIndex(c, rng), SelectIndex(c, rng)
}
