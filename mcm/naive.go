package mcm

// SolveNaive runs the same recurrence as Solver without memoization.
// It takes exponential time and exists as a reference for small chains.
func SolveNaive(seq Sequence) (Cost, error) {
	if err := validateRange(seq, 0, seq.Len()); err != nil {
		return 0, err
	}
	return checkOverflow(naiveMinCost(seq, 0, seq.Len()), 0, seq.Len())
}

func naiveMinCost(seq Sequence, first, last int) Cost {
	if last-first == 1 {
		return 0
	}
	lowest := MaxCost
	for middle := first + 1; middle < last; middle++ {
		cost := addCost(
			addCost(naiveMinCost(seq, first, middle), naiveMinCost(seq, middle, last)),
			CombineCost(seq.ShapeOf(first, middle), seq.ShapeOf(middle, last)),
		)
		lowest = min(lowest, cost)
	}
	return lowest
}
