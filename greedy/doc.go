// Package greedy implements greedy best-first goal search on a core.Graph.
//
// The frontier is ordered by the heuristic estimate to the goal alone;
// accumulated path cost is ignored:
//
//  1. BeginRun with the root at heuristic(root, goal).
//  2. Extract the unvisited node with the smallest estimate, mark it visited;
//     stop if it is the goal.
//  3. Each child seen for the first time joins the frontier at
//     heuristic(child, goal) with the active node as parent.
//
// Nodes are marked visited on expansion and a discovered node is never
// re-parented, so every node is expanded at most once and the search always
// terminates. The path found is not guaranteed to be optimal.
//
// Heuristics come from core.Graph.Heuristic: the pre-set annotation, or
// |goal - id| when a node has none.
package greedy
