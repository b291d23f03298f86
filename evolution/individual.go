// Package evolution implements the genetic operators and evolutionary
// driver that evolve expression trees against an observed dataset.
package evolution

import (
	"math"
	"math/rand"

	"github.com/lteder/symboreg/expr"
)

// Point is a single observed (x, y) pair the population is scored against.
type Point struct {
	X, Y float64
}

// minPositive guards against an exact-zero sum of squared error, matching
// the smallest positive normal float64 (Rust's f64::MIN_POSITIVE) the guard
// expr uses internally for division.
const minPositive = 2.2250738585072014e-308

// Individual owns exactly one expression tree plus a cached fitness
// scalar. The cache is refreshed whenever the tree is built, crossed, or
// mutated.
type Individual struct {
	Tree    *expr.Tree
	Fitness float64
}

// NewIndividual spawns a fresh random tree and scores it against points.
func NewIndividual(points []Point, rng *rand.Rand) *Individual {
	tr := expr.New()
	tr.Spawn(rng)
	ind := &Individual{Tree: tr}
	ind.UpdateFitness(points)
	return ind
}

// Clone returns a deep copy, fitness included.
func (ind *Individual) Clone() *Individual {
	return &Individual{Tree: ind.Tree.Clone(), Fitness: ind.Fitness}
}

// UpdateFitness recomputes and caches fitness against points.
//
// S = minPositive + sum((y - collapse(x))^2) over points, multiplied by 10
// if the tree has no Variable node (a constant predictor is penalised).
// S is capped at math.MaxFloat64 when the sum overflows. Fitness is 1/S:
// higher is better, always finite and strictly positive.
func (ind *Individual) UpdateFitness(points []Point) {
	s := minPositive
	for _, p := range points {
		err := p.Y - ind.Tree.Collapse(p.X)
		s += err * err
	}
	if !ind.Tree.HasVariable() {
		s *= 10
	}
	if math.IsInf(s, 0) || math.IsNaN(s) {
		s = math.MaxFloat64
	}
	ind.Fitness = 1 / s
}

// CrossOver produces two candidate offspring via the tree crossover of
// expr.Crossover, scores them, then applies elitist replacement: for each
// parent/child pair, the fitter of the two survives (ties broken by lower
// complexity). This guarantees monotone non-regression at the pair level.
//
// Either parent with a depth-1 tree is first grown to depth 2, since
// crossover requires a non-trivial tree on both sides.
func (ind *Individual) CrossOver(other *Individual, points []Point, rng *rand.Rand) (*Individual, *Individual) {
	selfTree := ind.Tree
	if selfTree.Depth() == 1 {
		selfTree = selfTree.Clone()
		selfTree.RandomInstantiate(0, 2, rng)
	}
	otherTree := other.Tree
	if otherTree.Depth() == 1 {
		otherTree = otherTree.Clone()
		otherTree.RandomInstantiate(0, 2, rng)
	}

	childATree, childBTree := expr.Crossover(selfTree, otherTree, rng)

	childA := &Individual{Tree: childATree}
	childA.UpdateFitness(points)
	childB := &Individual{Tree: childBTree}
	childB.UpdateFitness(points)

	return elitistSurvivor(ind, childA), elitistSurvivor(other, childB)
}

// elitistSurvivor keeps parent or child, whichever has higher fitness;
// ties favor the lower-complexity tree.
func elitistSurvivor(parent, child *Individual) *Individual {
	if child.Fitness > parent.Fitness {
		return child
	}
	if child.Fitness < parent.Fitness {
		return parent
	}
	if child.Tree.Complexity() < parent.Tree.Complexity() {
		return child
	}
	return parent
}

// Mutate applies the dispatch policy of the four mutation operators and
// rescores: trees with depth > 2 pick uniformly among all four; shallower
// trees pick only between mutate_constant and mutate_similar (clip and
// swap would break structure on a tree that small).
func (ind *Individual) Mutate(points []Point, rng *rand.Rand) {
	if ind.Tree.Depth() > 2 {
		switch rng.Intn(4) {
		case 0:
			ind.Tree.MutateConstant(rng)
		case 1:
			ind.Tree.MutateClip(rng)
		case 2:
			ind.Tree.MutateSwap(rng)
		default:
			ind.Tree.MutateSimilar(rng)
		}
	} else {
		if rng.Intn(2) == 0 {
			ind.Tree.MutateConstant(rng)
		} else {
			ind.Tree.MutateSimilar(rng)
		}
	}
	ind.UpdateFitness(points)
}
