// Package pathfind is a small in-memory path-search engine: build a weighted,
// heuristically annotated graph and ask one of several interchangeable
// strategies for a route between two nodes.
//
// 🚀 What is inside?
//
//	• Graph store: integer node identities, directional adjacency, symmetric
//	  weights, lazily drawn seeded random weights for unset edges
//	• Uninformed search: BFS, DFS (recursive and iterative)
//	• Cost search: Dijkstra
//	• Heuristic search: greedy best-first, A*
//	• Path reconstruction with total cost, and a diagnostic graph dump
//
// The packages:
//
//	core/          Graph, Node, per-run state, weight/heuristic policy, Path
//	bfs/ dfs/      uninformed traversals that stop at the goal
//	dijkstra/      cheapest path by relaxation
//	greedy/        best-first by heuristic only
//	astar/         cost plus heuristic, single-field f/g encoding
//	search/        pick a strategy by name; FindPath and RunAll helpers
//	builder/       deterministic topologies (path, cycle, star, complete, grid, random)
//	gridgraph/     terrain maps as 4- or 8-connected weighted graphs
//	scenario/      YAML scenario files, including the built-in seven-node demo
//	cmd/pathfind/  command-line driver
//
// Quick example:
//
//	    A──4──B
//	    │     │3
//	    1     │
//	    │     │
//	    C──2──D
//
//	g, _ := core.NewGraph(4, core.WithSymmetricAdjacency())
//	for id := 0; id < 4; id++ {
//		g.CreateNode(id)
//	}
//	g.AddEdge(0, 1, core.WithWeight(4))
//	g.AddEdge(0, 2, core.WithWeight(1))
//	g.AddEdge(1, 3, core.WithWeight(3))
//	g.AddEdge(2, 3, core.WithWeight(2))
//	p, _ := search.FindPath(g, search.Dijkstra, 0, 3) // A -> C -> D (cost 3)
//
// Strategies never return an error for an unreachable goal: they return a
// nil node. search.FindPath turns that into search.ErrGoalUnreachable.
//
//	go install github.com/katalvlaran/pathfind/cmd/pathfind@latest
package pathfind
