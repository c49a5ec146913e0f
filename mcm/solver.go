package mcm

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/tableize_go/pure"
)

// minCostIdentity names the memoized minimum-cost function in a table.
const minCostIdentity pure.Identity = "mcm.min_cost"

var ErrInvalidRange = errors.New("invalid subrange")

// lookupTable is satisfied by both pure.Table and pure.SyncTable.
type lookupTable interface {
	LookupOrCompute(pure.Identity, pure.Key, func() (Cost, error)) (Cost, error)
}

type Option func(*Solver)

// WithTable makes the solver memoize into table instead of a fresh table
// per call. Entries are keyed by sequence identity, so one table can serve
// any number of sequences.
func WithTable(table *pure.Table[Cost]) Option {
	return func(s *Solver) {
		s.table = table
	}
}

// WithCombineCost replaces CombineCost, e.g. to count its invocations.
func WithCombineCost(combine func(x, y Shape) Cost) Option {
	return func(s *Solver) {
		s.combine = combine
	}
}

// Solver finds the minimum multiplication cost of a chain.
// A Solver is not safe for concurrent use; see SolveParallel.
type Solver struct {
	table   *pure.Table[Cost]
	combine func(x, y Shape) Cost
	last    *pure.Table[Cost]
}

func NewSolver(opts ...Option) *Solver {
	s := &Solver{combine: CombineCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve returns the minimum cost of multiplying the whole chain.
func (s *Solver) Solve(seq Sequence) (Cost, error) {
	return s.SolveRange(seq, 0, seq.Len())
}

// SolveRange returns the minimum cost of multiplying the subrange
// [first, last) of seq.
func (s *Solver) SolveRange(seq Sequence, first, last int) (Cost, error) {
	if err := validateRange(seq, first, last); err != nil {
		return 0, err
	}

	table := s.table
	if table == nil {
		table = pure.NewTable[Cost](nil)
	}
	s.last = table

	run := &solveRun{seq: seq, table: table, combine: s.combine}
	cost, err := run.lookup(first, last)
	if err != nil {
		return 0, err
	}
	return checkOverflow(cost, first, last)
}

// Stats reports the table used by the most recent solve.
func (s *Solver) Stats() pure.Stats {
	if s.last == nil {
		return pure.Stats{}
	}
	return s.last.Stats()
}

// solveRun holds what one top-level solve threads through its recursion.
type solveRun struct {
	ctx     context.Context // nil when the run cannot be cancelled
	seq     Sequence
	table   lookupTable
	combine func(x, y Shape) Cost
}

// lookup returns the cost of [first, last) through the table.
// Single shapes cost nothing and are not stored.
func (r *solveRun) lookup(first, last int) (Cost, error) {
	if last-first == 1 {
		return 0, nil
	}
	return r.table.LookupOrCompute(
		minCostIdentity,
		pure.KeyOf(r.seq.ID(), first, last),
		func() (Cost, error) {
			return r.minCost(first, last)
		},
	)
}

// minCost tries every split first < middle < last.
func (r *solveRun) minCost(first, last int) (Cost, error) {
	if r.ctx != nil {
		if err := r.ctx.Err(); err != nil {
			return 0, err
		}
	}

	lowest := MaxCost
	for middle := first + 1; middle < last; middle++ {
		cost, err := r.split(first, middle, last)
		if err != nil {
			return 0, err
		}
		lowest = min(lowest, cost)
	}
	return lowest, nil
}

func (r *solveRun) split(first, middle, last int) (Cost, error) {
	left, err := r.lookup(first, middle)
	if err != nil {
		return 0, err
	}
	right, err := r.lookup(middle, last)
	if err != nil {
		return 0, err
	}
	return addCost(
		addCost(left, right),
		r.combine(r.seq.ShapeOf(first, middle), r.seq.ShapeOf(middle, last)),
	), nil
}

func validateRange(seq Sequence, first, last int) error {
	if seq.Len() == 0 {
		return ErrEmptySequence
	}
	if first < 0 || last > seq.Len() || first >= last {
		return fmt.Errorf("%w: [%d, %d) of a chain of %d", ErrInvalidRange, first, last, seq.Len())
	}
	return nil
}

func checkOverflow(cost Cost, first, last int) (Cost, error) {
	if cost == MaxCost {
		return 0, fmt.Errorf("%w: [%d, %d)", ErrCostOverflow, first, last)
	}
	return cost, nil
}
