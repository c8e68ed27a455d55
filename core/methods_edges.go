// File: methods_edges.go
// Role: Edge recording and the distance/heuristic policy: AddEdge, Children,
//       Weight, Heuristic.
//
// Determinism:
//   - Children() preserves AddEdge order; every strategy expands children in it.
//   - Lazily generated weights depend only on the seed and the order of first use.
package core

import "fmt"

// AddEdge records child as adjacent to parent. With WithWeight the weight is
// cached symmetrically now; otherwise resolution is deferred to first use.
// If the graph was built WithSymmetricAdjacency, parent is also recorded as a
// child of child.
//
// Errors:
//   - ErrInvalidNodeIdentity / ErrNodeNotFound for unknown endpoints.
//   - ErrNegativeWeight for an explicit weight below zero.
//   - ErrWeightTooLarge for an explicit weight above MaxWeight.
//   - ErrRunInProgress while a search run is active.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(parent, child int, opts ...EdgeOption) error {
	if g.running {
		return fmt.Errorf("%w: AddEdge(%d, %d)", ErrRunInProgress, parent, child)
	}
	if _, err := g.Node(parent); err != nil {
		return err
	}
	if _, err := g.Node(child); err != nil {
		return err
	}

	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasWeight {
		if cfg.weight < 0 {
			return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, parent, child, cfg.weight)
		}
		if cfg.weight > MaxWeight {
			return fmt.Errorf("%w: %d→%d weight=%d, max %d", ErrWeightTooLarge, parent, child, cfg.weight, MaxWeight)
		}
		g.weights[parent][child] = cfg.weight
		g.weights[child][parent] = cfg.weight
	}

	g.children[parent] = append(g.children[parent], child)
	if g.symmetric && parent != child {
		g.children[child] = append(g.children[child], parent)
	}

	return nil
}

// Children returns the nodes adjacent to n, in the order they were added.
func (g *Graph) Children(n *Node) []*Node {
	ids := g.children[n.id]
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = g.slots[id]
	}

	return out
}

// Weight resolves the weight of the edge between a and b.
//
// Policy:
//   - a == b ⇒ 0.
//   - a cached weight is returned as is.
//   - otherwise a weight in [MinRandomWeight, MaxRandomWeight] is drawn from
//     the graph's source and cached for both directions.
//
// Once resolved, weight(a,b) == weight(b,a) for the lifetime of the graph.
func (g *Graph) Weight(a, b *Node) int64 {
	if a.id == b.id {
		return 0
	}
	if w := g.weights[a.id][b.id]; w != unsetWeight {
		return w
	}

	w := randomWeight(g.source)
	g.weights[a.id][b.id] = w
	g.weights[b.id][a.id] = w

	return w
}

// Heuristic estimates the remaining cost from n to goal.
//
// Policy:
//   - n == goal ⇒ 0.
//   - a pre-set heuristic on n is returned as is.
//   - otherwise |goal.ID - n.ID|, which is only meaningful when identities are
//     laid out so that numeric distance approximates true cost.
//
// Admissibility is the caller's responsibility and is never checked.
func (g *Graph) Heuristic(n, goal *Node) int64 {
	if n.id == goal.id {
		return 0
	}
	if n.hasHeuristic {
		return n.heuristic
	}

	d := int64(goal.id - n.id)
	if d < 0 {
		d = -d
	}

	return d
}
