package mcm

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/on-the-ground/tableize_go/pure"
)

// SolveParallel evaluates the top-level split points of seq on up to
// workers goroutines (unbounded when workers <= 0). Subranges are memoized
// in a pure.SyncTable shared by all goroutines, so a subrange reached from
// several split points is still solved exactly once.
//
// opts are the Solver options; WithTable has no effect here. A combine
// function set with WithCombineCost is called from several goroutines.
//
// Cancelling ctx stops the solve; no partial result is stored.
func SolveParallel(ctx context.Context, seq Sequence, workers int, opts ...Option) (Cost, error) {
	n := seq.Len()
	if err := validateRange(seq, 0, n); err != nil {
		return 0, err
	}
	if n == 1 {
		return 0, nil
	}

	solver := NewSolver(opts...)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	run := &solveRun{
		ctx:     ctx,
		seq:     seq,
		table:   pure.NewSyncTable[Cost](max(workers, 1)),
		combine: solver.combine,
	}

	candidates := make([]Cost, n-1)
	for middle := 1; middle < n; middle++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cost, err := run.split(0, middle, n)
			if err != nil {
				return err
			}
			candidates[middle-1] = cost
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return checkOverflow(slices.Min(candidates), 0, n)
}
