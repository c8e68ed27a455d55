package dfs

import (
	"github.com/katalvlaran/pathfind/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
}

// frame is one level of the explicit stack: a node and the index of the next
// child to examine.
type frame struct {
	node     *core.Node
	children []*core.Node
	next     int
}

// DFS performs recursive depth-first search from root towards goal.
// It returns the goal with its parent chain populated, or nil when the goal is
// unreachable from root.
func DFS(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
	w, start, target, err := prepare(g, root, goal, "dfs", opts)
	if err != nil {
		return nil, err
	}
	defer g.EndRun()

	w.visit(start)

	return w.finish(w.recurse(start, target), "dfs", root, goal), nil
}

// DFSIterative performs the same traversal as DFS with an explicit stack.
func DFSIterative(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
	w, start, target, err := prepare(g, root, goal, "dfs-iterative", opts)
	if err != nil {
		return nil, err
	}
	defer g.EndRun()

	return w.finish(w.iterate(start, target), "dfs-iterative", root, goal), nil
}

// prepare validates input, applies options and begins the run.
func prepare(g *core.Graph, root, goal int, name string, opts []Option) (*dfsWalker, *core.Node, *core.Node, error) {
	start, target, err := core.Endpoints(g, root, goal)
	if err != nil {
		return nil, nil, nil, err
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	g.BeginRun(start, 0)
	g.Logger().Debug("search started", "algorithm", name, "root", root, "goal", goal)

	return &dfsWalker{graph: g, opts: dopts}, start, target, nil
}

func (w *dfsWalker) finish(found *core.Node, name string, root, goal int) *core.Node {
	if found == nil {
		w.graph.Logger().Debug("goal unreachable", "algorithm", name, "root", root, "goal", goal)
		return nil
	}
	w.graph.Logger().Debug("goal reached", "algorithm", name, "goal", goal, "depth", found.Distance())

	return found
}

// visit marks n discovered and fires the pre-order hook.
func (w *dfsWalker) visit(n *core.Node) {
	w.graph.MarkVisited(n)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(n.ID())
	}
}

// descend links child under parent; distance records depth.
func (w *dfsWalker) descend(child, parent *core.Node) {
	w.graph.Relax(child, parent, parent.Distance()+1)
	w.visit(child)
}

// recurse explores cur's subtree and returns the goal as soon as it is found.
// cur must already be visited.
func (w *dfsWalker) recurse(cur, goal *core.Node) *core.Node {
	if cur == goal {
		return cur
	}
	for _, child := range w.graph.Children(cur) {
		if w.graph.Visited(child) {
			continue
		}
		w.descend(child, cur)
		if found := w.recurse(child, goal); found != nil {
			return found
		}
	}

	return nil
}

// iterate mirrors recurse: each frame resumes its child scan where the
// deeper frame left off, which reproduces the recursive visit order.
func (w *dfsWalker) iterate(start, goal *core.Node) *core.Node {
	w.visit(start)
	if start == goal {
		return start
	}

	stack := []frame{{node: start, children: w.graph.Children(start)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.children[top.next]
		top.next++
		if w.graph.Visited(child) {
			continue
		}

		w.descend(child, top.node)
		if child == goal {
			return child
		}
		stack = append(stack, frame{node: child, children: w.graph.Children(child)})
	}

	return nil
}
