package expr

import "math/rand"

// checkedTerminals returns TerminalIdxs(), self-healing degenerate trees
// first: a tree with zero terminals gets clipped down to one (or
// reinstantiated if only the root operator remains), since every
// well-formed tree under I1-I6 must have at least one terminal. This
// mirrors the reference implementation's defensive get_checked_terminals,
// kept as a guard at the same call sites even though a tree built and
// mutated only through the public API never reaches the degenerate case.
func (t *Tree) checkedTerminals(rng *rand.Rand) []int {
	idxs := t.TerminalIdxs()
	if len(idxs) == 0 {
		ops := t.OpIdxs()
		if len(ops) <= 1 {
			depth := 2 + rng.Intn(2)
			t.RandomInstantiate(0, depth, rng)
		} else {
			choice := ops[1+rng.Intn(len(ops)-1)]
			t.DeleteFromIdx(choice, rng)
		}
		idxs = t.TerminalIdxs()
	}
	return idxs
}

// perturbNumber draws f in [-1.5, 1.5) and a coin; returns n+f (coin true)
// or n*f (coin false), reflected back in-bounds with 1.2x overshoot if it
// escapes [MinNumber, MaxNumber] and then clamped.
func perturbNumber(n float64, rng *rand.Rand) float64 {
	f := -1.5 + rng.Float64()*3.0
	if rng.Intn(2) == 0 {
		n = n + f
	} else {
		n = n * f
	}
	if n > MaxNumber {
		n -= 1.2 * (n - MaxNumber)
	} else if n < MinNumber {
		n -= 1.2 * (n - MinNumber)
	}
	if n > MaxNumber {
		n = MaxNumber
	} else if n < MinNumber {
		n = MinNumber
	}
	return n
}

// mutateNumber perturbs the Number terminal at a random index drawn from
// terminals (Variable terminals are left unchanged).
func (t *Tree) mutateNumber(terminals []int, rng *rand.Rand) {
	if len(terminals) == 0 {
		violate("mutateNumber", "no terminals to mutate")
	}
	idx := terminals[rng.Intn(len(terminals))]
	n := t.at(idx)
	if n == nil {
		violate("mutateNumber", "terminal index %d is absent", idx)
	}
	if n.Kind == Variable {
		return
	}
	v := perturbNumber(n.Value, rng)
	t.set(idx, &Node{Kind: Number, Value: v})
}

// MutateConstant grows a terminal into a random subtree when depth budget
// allows, otherwise falls back to perturbing a Number terminal's value.
func (t *Tree) MutateConstant(rng *rand.Rand) {
	terminals := t.checkedTerminals(rng)

	if t.Depth() < MaxDepth {
		candidates := append([]int(nil), terminals...)
		for len(candidates) > 0 {
			pick := rng.Intn(len(candidates))
			choice := candidates[pick]
			candidates[pick] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]

			maxSpawnDepth := MaxDepth - depthFromIdx(choice) + 1
			if maxSpawnDepth >= 3 {
				spawnDepth := 2 + rng.Intn(maxSpawnDepth-2)
				t.RandomInstantiate(choice, spawnDepth, rng)
				return
			}
		}
	}

	t.mutateNumber(terminals, rng)
}

// MutateClip deletes a random non-root operator node, shrinking the tree.
func (t *Tree) MutateClip(rng *rand.Rand) {
	ops := t.OpIdxs()
	if len(ops) <= 1 {
		violate("MutateClip", "no non-root operator to clip")
	}
	choice := ops[1+rng.Intn(len(ops)-1)]
	t.DeleteFromIdx(choice, rng)
}

// MutateSwap exchanges two structurally unrelated subtrees within t,
// preserving the depth bound. Falls back to MutateConstant if no legal
// pair of indices exists.
func (t *Tree) MutateSwap(rng *rand.Rand) {
	fullDepth := t.Depth()

	nodes := t.occupiedIdxs()
	if len(nodes) <= 1 {
		violate("MutateSwap", "not enough nodes to swap")
	}
	// Drop the root: it never participates in a swap.
	for i, idx := range nodes {
		if idx == 0 {
			nodes = append(nodes[:i], nodes[i+1:]...)
			break
		}
	}

	pick := rng.Intn(len(nodes))
	idx1 := nodes[pick]
	nodes[pick] = nodes[len(nodes)-1]
	nodes = nodes[:len(nodes)-1]
	depth1 := t.Subtree(idx1).Depth()

	idx2 := -1
	for len(nodes) > 0 {
		pick := rng.Intn(len(nodes))
		candidate := nodes[pick]
		nodes[pick] = nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		depth2 := t.Subtree(candidate).Depth()
		if !checkRelated(idx1, candidate) &&
			fullDepth-depth1+depth2 <= MaxDepth &&
			fullDepth-depth2+depth1 <= MaxDepth {
			idx2 = candidate
			break
		}
	}

	if idx2 < 0 {
		t.MutateConstant(rng)
		return
	}

	t.swapSubtrees(idx1, idx2)
}

// swapSubtrees exchanges the subtrees rooted at i1 and i2, slot-for-slot in
// level order.
func (t *Tree) swapSubtrees(i1, i2 int) {
	type pair struct{ a, b int }
	stack := []pair{{i1, i2}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.slots[p.a], t.slots[p.b] = t.slots[p.b], t.slots[p.a]

		al, ar := leftIdx(p.a), rightIdx(p.a)
		bl, br := leftIdx(p.b), rightIdx(p.b)
		if al < MaxSlots && bl < MaxSlots {
			stack = append(stack, pair{al, bl})
		}
		if ar < MaxSlots && br < MaxSlots {
			stack = append(stack, pair{ar, br})
		}
	}
}

// MutateSimilar point-mutates a single node preserving arity:
// Add<->Subtract, Multiply<->Divide, Sine<->Cosine, or perturbs a Number.
func (t *Tree) MutateSimilar(rng *rand.Rand) {
	var candidates []int
	for i, n := range t.slots {
		if n != nil && n.Kind != Variable {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		violate("MutateSimilar", "no eligible node")
	}
	choice := candidates[rng.Intn(len(candidates))]
	n := t.at(choice)
	if n.Kind == Number {
		t.mutateNumber([]int{choice}, rng)
		return
	}
	t.set(choice, &Node{Kind: similarKind(n.Kind)})
}
