// Package dfs implements depth-first goal search on core.Graph, in a recursive
// and an iterative (explicit stack) form.
//
// Key features:
//   - DFS(g, root, goal, opts...): recursive descent, one subtree fully explored
//     before backtracking.
//   - DFSIterative(g, root, goal, opts...): the same traversal driven by an
//     explicit stack of frames, immune to recursion depth.
//   - Both forms visit nodes in exactly the same order and record the same
//     parent links for identical graphs.
//
// The result is the first path found along the descent. It is an any-path
// search: neither hop count nor cost is minimized.
//
// Complexity:
//
//   - Time:   O(N + E)
//   - Memory: O(N) for the recursion or the frame stack.
//
// Options:
//
//   - WithOnVisit(fn)  hook called when a node is first discovered (pre-order).
//
// Errors:
//
//   - core.ErrNilGraph, core.ErrInvalidNodeIdentity, core.ErrNodeNotFound.
//
// An unreachable goal is not an error: both functions return (nil, nil).
package dfs
