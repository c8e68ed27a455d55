package bfs

import (
	"github.com/katalvlaran/pathfind/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []*core.Node
}

// BFS runs breadth-first search on g from root towards goal.
//
// It returns the goal node with its parent chain populated, or nil if the
// goal is unreachable from root. Errors are reserved for invalid input:
// core.ErrNilGraph, core.ErrInvalidNodeIdentity, core.ErrNodeNotFound.
//
// Per-run state is reset by the call itself (core.Graph.BeginRun).
func BFS(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
	start, target, err := core.Endpoints(g, root, goal)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g.BeginRun(start, 0)
	defer g.EndRun()
	g.Logger().Debug("search started", "algorithm", "bfs", "root", root, "goal", goal)

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]*core.Node, 0, g.Len()),
	}
	w.enqueue(start, nil)

	found := w.loop(target)
	if found == nil {
		g.Logger().Debug("goal unreachable", "algorithm", "bfs", "root", root, "goal", goal)
		return nil, nil
	}
	g.Logger().Debug("goal reached", "algorithm", "bfs", "goal", goal, "distance", found.Distance())

	return found, nil
}

// enqueue marks n visited, links it to parent and appends it to the queue.
func (w *walker) enqueue(n, parent *core.Node) {
	w.graph.MarkVisited(n)
	if parent != nil {
		// Distance carries the hop count for diagnostics.
		w.graph.Relax(n, parent, parent.Distance()+1)
	}
	w.queue = append(w.queue, n)
}

// loop processes the queue until the goal is dequeued or the queue drains.
func (w *walker) loop(goal *core.Node) *core.Node {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnVisit(cur.ID())

		if cur == goal {
			return cur
		}
		for _, child := range w.graph.Children(cur) {
			if !w.graph.Visited(child) {
				w.enqueue(child, cur)
			}
		}
	}

	return nil
}
