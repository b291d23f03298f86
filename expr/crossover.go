package expr

import "math/rand"

// GetSwapIdx draws a target depth d in [1, depth) uniformly. If d > 1, it
// returns a random operator index whose subtree depth equals d; if none
// exists, or d == 1, it returns a random terminal index. Callers must
// ensure Depth() > 1 first (crossover requires a non-trivial tree; the
// Driver grows depth-1 parents to depth 2 before crossing them).
func (t *Tree) GetSwapIdx(rng *rand.Rand) int {
	depth := t.Depth()
	if depth <= 1 {
		violate("GetSwapIdx", "tree depth %d must be > 1", depth)
	}

	targetDepth := 1 + rng.Intn(depth-1)
	if targetDepth > 1 {
		ops := t.OpIdxs()
		for len(ops) > 0 {
			pick := rng.Intn(len(ops))
			choice := ops[pick]
			ops[pick] = ops[len(ops)-1]
			ops = ops[:len(ops)-1]
			if t.Subtree(choice).Depth() == targetDepth {
				return choice
			}
		}
	}

	terms := t.checkedTerminals(rng)
	return terms[rng.Intn(len(terms))]
}

// fitsAt reports whether grafting a subtree of the given depth at idx
// keeps the whole tree within MaxDepth.
func fitsAt(idx, subtreeDepth int) bool {
	return depthFromIdx(idx)+subtreeDepth-1 <= MaxDepth
}

// checkSwapIdx fixes up the node at idx after a foreign subtree has been
// grafted there, so the result still satisfies the arity invariants
// (I2-I4) relative to idx's parent:
//
//   - If idx's parent is unary and the opposite child slot is occupied,
//     that slot is erased (unary operators take only a left child).
//   - If idx's parent slot is itself a terminal — structurally impossible
//     to reach through the public API, since a terminal never has
//     children to graft into, but guarded defensively to match the
//     documented contract — the parent is promoted to a matching
//     operator and any missing sibling is filled with a fresh terminal.
func (t *Tree) checkSwapIdx(idx int, rng *rand.Rand) {
	if idx == 0 {
		return
	}
	p := parentIdx(idx)
	parent := t.at(p)
	if parent == nil {
		violate("checkSwapIdx", "parent of %d is absent", idx)
	}

	var sibling int
	if idx == leftIdx(p) {
		sibling = rightIdx(p)
	} else {
		sibling = leftIdx(p)
	}

	switch {
	case parent.Kind.IsUnary():
		if sibling < MaxSlots && t.at(sibling) != nil {
			t.set(sibling, nil)
			t.clearBelow(sibling)
		}
	case parent.Kind.IsBinary():
		// Both slots already hold something per I2; nothing to fix.
	default:
		if sibling < MaxSlots && t.at(sibling) == nil {
			fresh := randomTerminal(rng)
			t.set(sibling, &fresh)
		}
		op := randomOp(rng)
		for !op.Kind.IsBinary() {
			op = randomOp(rng)
		}
		t.set(p, &op)
	}
}

// Crossover exchanges the subtrees at each tree's own GetSwapIdx position,
// producing two candidate offspring. If the drawn positions are depth-
// incompatible (grafting would exceed MaxDepth in either direction) both
// offspring are returned as unmodified clones of their parents rather than
// risk breaking the depth invariant.
func Crossover(a, b *Tree, rng *rand.Rand) (*Tree, *Tree) {
	idxA := a.GetSwapIdx(rng)
	idxB := b.GetSwapIdx(rng)

	subA := a.Subtree(idxA)
	subB := b.Subtree(idxB)

	childA := a.Clone()
	childB := b.Clone()

	if fitsAt(idxA, subB.Depth()) && fitsAt(idxB, subA.Depth()) {
		childA.clearBelow(idxA)
		childA.spliceFrom(subB, idxA, 0)
		childA.checkSwapIdx(idxA, rng)

		childB.clearBelow(idxB)
		childB.spliceFrom(subA, idxB, 0)
		childB.checkSwapIdx(idxB, rng)
	}

	return childA, childB
}
