package search

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/burrow/core"
)

// pollEvery is how many expansions pass between context checks. The first
// expansion is always checked.
const pollEvery = 1024

// Solve returns the minimal total energy needed to move every mover of
// start into its own room of topology t.
//
// Preconditions and validation (in order):
//  1. t must be non-nil (ErrNilTopology).
//  2. start.Positions must fit t (core.ErrMalformedInput, see core.NewState).
//
// The search is seeded at cost zero regardless of start.Cost. It fails with
// ErrUnsolvable when no solved state is reachable, ErrNodeLimit when the
// MaxNodes ceiling is crossed, the wrapped context error when ctx is done,
// and core.ErrLogicDefect when an internal invariant breaks.
//
// Complexity:
//
//   - Time:  O(S·M·log S) for S discovered states and M moves per state.
//   - Space: O(S), every discovered state is retained until Solve returns.
func Solve(ctx context.Context, t *core.Topology, start core.State, opts ...Option) (res Result, err error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if t == nil {
		return Result{}, ErrNilTopology
	}
	seed, err := core.NewState(t, start.Positions)
	if err != nil {
		return Result{}, err
	}

	// 3) A panic past this point is a bug in the core, never bad input.
	defer recoverDefect(&err)

	r := &runner{
		t:       t,
		options: cfg,
		costs:   make(map[string]int64),
		closed:  make(map[string]struct{}),
		pq:      make(frontier, 0, 1024),
	}
	r.push(seed)

	return r.process(ctx)
}

// recoverDefect turns a panic into an error wrapping core.ErrLogicDefect.
func recoverDefect(err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("%w: %v", core.ErrLogicDefect, p)
	}
}

// runner holds the mutable state of one Solve call. Nothing here outlives it.
type runner struct {
	t       *core.Topology
	options Options
	costs   map[string]int64    // best-known cost per Positions key; authoritative
	closed  map[string]struct{} // keys already expanded at their current best cost
	pq      frontier
	seq     uint64
	buf     []core.State
	stats   Result
}

// process is the best-first loop. Entries leave the frontier in
// non-decreasing priority order, so the first solved state popped is optimal.
func (r *runner) process(ctx context.Context) (Result, error) {
	began := time.Now()

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*entry)

		// The cost map wins over the cost carried by the entry.
		best, ok := r.costs[item.key]
		if !ok {
			panic(fmt.Sprintf("frontier entry %v has no recorded cost", item.positions))
		}
		if _, done := r.closed[item.key]; done {
			continue
		}
		r.closed[item.key] = struct{}{}
		state := core.State{Positions: item.positions, Cost: best}

		if r.t.Solved(state.Positions) {
			r.stats.Cost = state.Cost
			r.stats.Discovered = len(r.costs)
			r.logf("solved: cost=%d expanded=%d discovered=%d in %s",
				r.stats.Cost, r.stats.Expanded, r.stats.Discovered, time.Since(began))

			return r.stats, nil
		}

		r.stats.Expanded++
		if r.options.MaxNodes > 0 && r.stats.Expanded > r.options.MaxNodes {
			return Result{}, fmt.Errorf("%w: %d", ErrNodeLimit, r.options.MaxNodes)
		}
		if r.stats.Expanded%pollEvery == 1 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("search: stopped after %d expansions: %w", r.stats.Expanded, err)
			}
		}
		if every := r.options.ProgressEvery; every > 0 && r.stats.Expanded%every == 0 {
			r.logf("progress: expanded=%d frontier=%d discovered=%d cost=%d",
				r.stats.Expanded, r.pq.Len(), len(r.costs), state.Cost)
		}

		r.relax(state)
	}

	r.logf("unsolvable: expanded=%d discovered=%d", r.stats.Expanded, len(r.costs))

	return Result{}, ErrUnsolvable
}

// relax records every successor of s that is new or strictly cheaper than
// its best-known cost, and pushes it onto the frontier.
func (r *runner) relax(s core.State) {
	r.buf = core.Moves(r.t, s, r.options.DirectMoves, r.buf[:0])
	for _, next := range r.buf {
		key := next.Positions.Key()
		if known, ok := r.costs[key]; ok && known <= next.Cost {
			continue
		}
		r.costs[key] = next.Cost
		delete(r.closed, key)
		r.pushKeyed(next, key)
	}
}

// push records the seed state and puts it on the frontier.
func (r *runner) push(s core.State) {
	key := s.Positions.Key()
	r.costs[key] = s.Cost
	r.pushKeyed(s, key)
}

func (r *runner) pushKeyed(s core.State, key string) {
	priority := s.Cost
	if r.options.Heuristic {
		priority = core.Estimate(r.t, s)
	}
	r.seq++
	heap.Push(&r.pq, &entry{
		positions: s.Positions,
		key:       key,
		cost:      s.Cost,
		priority:  priority,
		seq:       r.seq,
	})
}

func (r *runner) logf(format string, args ...interface{}) {
	if r.options.Logger != nil {
		r.options.Logger.Printf(format, args...)
	}
}
