// Package search selects one of the path-search strategies by name and runs
// it on a core.Graph.
//
// Every strategy shares the same contract: Run returns the goal node with its
// parent chain populated, or nil when the goal cannot be reached. FindPath
// folds reconstruction into the call and reports an unreachable goal as
// ErrGoalUnreachable instead.
//
//	g, _ := scenario.Default().Build()
//	p, err := search.FindPath(g, search.AStar, 0, 6)
//	// p.String() == "A -> C -> D -> E -> G (cost 9)"
//
// RunAll runs every strategy in turn on the same graph. Each strategy resets
// the per-run state itself, so results never leak between runs; note that the
// strategies draw lazily from the graph's weight source, so an unset weight
// first resolved by an earlier strategy stays fixed for the later ones.
package search
