package dijkstra

import (
	"github.com/katalvlaran/pathfind/core"
)

// Dijkstra searches for the cheapest path from root to goal in g.
//
// Returns the goal node with its parent chain populated, or nil if goal is
// unreachable. Per-run state is reset by the call itself.
func Dijkstra(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
	start, target, err := core.Endpoints(g, root, goal)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.BeginRun(start, 0)
	defer g.EndRun()
	g.Logger().Debug("search started", "algorithm", "dijkstra", "root", root, "goal", goal)

	r := &runner{g: g, options: cfg}
	found := r.process(target)
	if found == nil {
		g.Logger().Debug("goal unreachable", "algorithm", "dijkstra", "root", root, "goal", goal)
		return nil, nil
	}
	g.Logger().Debug("goal reached", "algorithm", "dijkstra", "goal", goal, "distance", found.Distance())

	return found, nil
}

// runner holds the configuration for a single Dijkstra execution; all node
// state lives in the graph.
type runner struct {
	g       *core.Graph
	options Options
}

// process is the core loop: extract the minimum, finalize it, relax its children.
//
// Loop termination conditions:
//
//   - The goal is extracted.
//   - MinUnvisited returns nil (every reachable node is finalized).
func (r *runner) process(goal *core.Node) *core.Node {
	for active := r.g.MinUnvisited(); active != nil; active = r.g.MinUnvisited() {
		r.g.MarkVisited(active)
		if r.options.OnVisit != nil {
			r.options.OnVisit(active.ID())
		}
		if active == goal {
			return active
		}
		r.relax(active)
	}

	return nil
}

// relax examines each child of u and improves its distance when the route
// through u is strictly shorter. Strict "<" keeps the first-found parent on ties.
// Sums saturate at core.MaxCost, so very heavy routes stay reachable.
func (r *runner) relax(u *core.Node) {
	for _, v := range r.g.Children(u) {
		newDist := core.AddCost(u.Distance(), r.g.Weight(u, v))
		if newDist >= v.Distance() {
			continue
		}
		r.g.Relax(v, u, newDist)
	}
}
