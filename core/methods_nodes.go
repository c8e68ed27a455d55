// File: methods_nodes.go
// Role: Node lifecycle & queries: CreateNode/Node/Nodes/SetHeuristic.
//
// Determinism:
//   - Nodes() returns nodes in creation order; MinUnvisited relies on it for ties.
package core

import "fmt"

// CreateNode allocates the node with the given identity: zero distance,
// no parent and no heuristic.
//
// Errors:
//   - ErrInvalidNodeIdentity if id is outside [0, N); the graph is unchanged.
//   - ErrDuplicateNode if the identity was already created.
//
// Complexity: O(1).
func (g *Graph) CreateNode(id int) (*Node, error) {
	if id < 0 || id >= g.n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidNodeIdentity, id, g.n)
	}
	if g.slots[id] != nil {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}

	node := &Node{id: id, parent: NoParent}
	g.slots[id] = node
	g.order = append(g.order, node)

	return node, nil
}

// Node returns the created node with the given identity.
//
// Errors:
//   - ErrInvalidNodeIdentity if id is outside [0, N).
//   - ErrNodeNotFound if the slot was never filled by CreateNode.
func (g *Graph) Node(id int) (*Node, error) {
	if id < 0 || id >= g.n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidNodeIdentity, id, g.n)
	}
	node := g.slots[id]
	if node == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return node, nil
}

// Nodes returns the created nodes in creation order.
// The slice is a copy; the nodes are the live records.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)

	return out
}

// SetHeuristic annotates the node with a static estimate of the cost to the goal.
// It must not be called while a run is in progress: A* recovers g-scores
// by subtracting the stored heuristic, so a mid-run change corrupts them.
// h must lie in [0, MaxWeight] (ErrHeuristicRange).
func (g *Graph) SetHeuristic(id int, h int64) error {
	if g.running {
		return fmt.Errorf("%w: SetHeuristic(%d)", ErrRunInProgress, id)
	}
	if h < 0 || h > MaxWeight {
		return fmt.Errorf("%w: node %d h=%d", ErrHeuristicRange, id, h)
	}
	node, err := g.Node(id)
	if err != nil {
		return err
	}
	node.heuristic = h
	node.hasHeuristic = true

	return nil
}
