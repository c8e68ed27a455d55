// Package dijkstra implements Dijkstra's shortest-path goal search on a
// core.Graph with non-negative edge weights.
//
// Algorithm:
//
//  1. BeginRun: every distance is Infinity except the root (0).
//  2. Extract the unvisited node of minimum distance (core.Graph.MinUnvisited),
//     mark it visited; stop if it is the goal.
//  3. For each child, if active.distance + weight(active, child) < child.distance,
//     set child.distance and child.parent = active.
//  4. Repeat until the goal is selected or no unvisited node has a finite distance.
//
// The goal's parent chain is then a globally cheapest path by cumulative
// weight. Unset weights are drawn from the graph's seeded source on first
// relaxation and cached, so the same seed reproduces the same answer.
//
// Complexity:
//
//	– Time:  O(N² + E): extraction is a linear scan over the node arena.
//	– Space: O(1) beyond the graph's own per-run state.
//
// Errors (sentinel, from core):
//
//	– core.ErrNilGraph             if g is nil.
//	– core.ErrInvalidNodeIdentity  if root or goal is outside [0, N).
//	– core.ErrNodeNotFound         if root or goal was never created.
//
// An unreachable goal yields (nil, nil).
//
// Example usage:
//
//	goal, err := dijkstra.Dijkstra(g, 0, 6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if goal != nil {
//	    fmt.Println(g.ReconstructPath(goal))
//	}
package dijkstra
