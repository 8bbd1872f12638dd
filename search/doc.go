// Package search finds the minimal energy that sorts a burrow.
//
// Overview:
//
//   - Solve runs a best-first search over core.Positions vectors. Each popped
//     state is expanded with core.Moves; successors are relaxed against a
//     best-known-cost map and pushed on a min-heap frontier.
//   - With the heuristic enabled (default) the frontier is ordered by
//     cost + core.Estimate, which turns Dijkstra into A*. The estimate is
//     admissible and consistent, so the first solved state popped is optimal.
//   - Equal priorities pop in push order, so traces are reproducible. The
//     returned cost never depends on this rule.
//
// Resource model:
//
//   - One call, one goroutine. The frontier and the cost map belong to a
//     runner created by Solve and dropped when it returns; concurrent calls
//     share only the immutable *core.Topology.
//   - Memory grows with the number of distinct discovered states. There is
//     no eviction. WithMaxNodes and a context deadline bound hostile inputs.
//
// Error handling (sentinel errors):
//
//   - ErrNilTopology: the topology argument is nil.
//   - core.ErrMalformedInput: the start positions do not fit the topology.
//   - ErrUnsolvable: the frontier emptied without reaching a solved state.
//   - ErrNodeLimit: more expansions than WithMaxNodes allows.
//   - core.ErrLogicDefect: an internal invariant broke (a bug, never input).
//   - context.Canceled / context.DeadlineExceeded, wrapped.
//
// Example usage:
//
//	t, _ := core.Standard(2)
//	start, _ := layout.Parse(layout.Lines(input), t)
//	res, err := search.Solve(ctx, t, start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost)
package search
