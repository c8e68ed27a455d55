// Package bfs provides breadth-first goal search over a core.Graph.
//
// What
//
//   - Explore nodes level by level from a root using a FIFO frontier.
//   - Mark nodes visited on enqueue, so no node is queued twice.
//   - Stop the first time the goal is dequeued; the goal's parent chain then
//     describes a path with the minimum number of edges.
//
// Why
//
//   - Hop-optimal paths in O(N + E) time. Edge weights are ignored, so the
//     result is not cost-optimal; use dijkstra or astar for that.
//
// Determinism
//
//	Children are enqueued in AddEdge order, so the visit sequence is fully
//	reproducible.
//
// Usage
//
//	goal, err := bfs.BFS(g, 0, 6)
//	if err != nil {
//		// ErrNilGraph, ErrInvalidNodeIdentity or ErrNodeNotFound from core
//	}
//	if goal == nil {
//		// goal unreachable from root
//	}
//	path := g.ReconstructPath(goal)
//
// Options
//
//   - WithOnVisit(fn): hook called when a node is dequeued.
//
// Complexity (N = nodes, E = recorded edges)
//
//   - Time:   O(N + E)
//   - Memory: O(N)
package bfs
