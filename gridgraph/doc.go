// Package gridgraph treats a 2D terrain map as a search graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int of cell costs with a LandThreshold
//     below which cells are walls.
//   - ParseMap reads the text form ('#', '.', '1'..'9').
//   - ToCoreGraph emits a *core.Graph: node identity y*Width+x, edge weight
//     max of the two cell costs, optional admissible heuristics to a goal.
//   - ConnectedComponents tells in advance whether a goal is reachable.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d + E), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered passable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ParseMap met an unknown character.
//   - ErrCellIndex: goal outside the grid.
package gridgraph
