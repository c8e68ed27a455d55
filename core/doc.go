// Package core provides the Graph Store of the path-finding engine: a fixed
// arena of N integer-identified nodes, their adjacency, a symmetric N×N weight
// cache and the per-run state (distance, parent, visited) that the search
// strategies in bfs, dfs, dijkstra, greedy and astar operate on.
//
// Model:
//
//   - Node identity is a small integer in [0, N), fixed at creation and also
//     the index into every table.
//   - Parent links are identities, not pointers: a lookup aid for
//     ReconstructPath, never ownership.
//   - Adjacency is owned by the Graph. AddEdge(parent, child) appends child to
//     parent's children only; weights are always symmetric. Use
//     WithSymmetricAdjacency to record both directions.
//   - Topology is fixed once construction is done. Nodes cannot be removed.
//
// Policy:
//
//	Weight(a, b)     0 if a==b; cached value; else random in [1,10], cached both ways.
//	Heuristic(n, g)  0 if n==g; pre-set value; else |g.ID - n.ID|.
//
// The random fill models unknown edge costs. It is deterministic for a given
// seed (WithSeed) or source (WithWeightSource); tests must fix one.
//
// Per-run state:
//
//	BeginRun(root, d0)  resets visited flags, distances to Infinity, parents to none.
//	Reset()             clears visited flags only.
//	MinUnvisited()      unvisited node of minimum finite distance, first created wins ties.
//
// Every strategy calls BeginRun itself, so callers may run any algorithm on the
// same graph back to back. Between BeginRun and EndRun, SetHeuristic and
// AddEdge return ErrRunInProgress.
//
// Concurrency:
//
//	None. A Graph belongs to one caller for the duration of a run; concurrent
//	runs on the same Graph race on per-run state.
//
// Example:
//
//	g, _ := core.NewGraph(3, core.WithSeed(42))
//	for i := 0; i < 3; i++ {
//		_, _ = g.CreateNode(i)
//	}
//	_ = g.AddEdge(0, 1, core.WithWeight(4))
//	_ = g.AddEdge(1, 2) // weight drawn on first use
package core
