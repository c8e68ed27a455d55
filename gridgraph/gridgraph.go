package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCell for a negative cost.
// A LandThreshold below 1 is raised to 1: zero-cost cells are always walls.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCell, v, x, y)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   max(opts.LandThreshold, 1),
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Passable reports whether the cell at (x,y) is in bounds and not a wall.
func (gg *GridGraph) Passable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to a row-major node identity: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major identity back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// ToCoreGraph converts the map into a *core.Graph with symmetric adjacency.
//
// Every cell becomes a node with identity Index(x,y); walls simply have no
// edges. Neighboring passable cells a, b are linked once with weight
// max(value(a), value(b)), so stepping onto expensive terrain costs the same
// in both directions.
//
// When goal ≥ 0 every node is annotated with minCost × distance to the goal
// cell, where distance is Manhattan under Conn4 and Chebyshev under Conn8 and
// minCost is the cheapest passable cell. The estimate never exceeds the true
// remaining cost, so A* stays optimal. Pass a negative goal to skip it.
//
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph(goal int, opts ...core.GraphOption) (*core.Graph, error) {
	total := gg.Width * gg.Height
	if goal >= total {
		return nil, fmt.Errorf("%w: goal %d in %dx%d map", ErrCellIndex, goal, gg.Width, gg.Height)
	}

	g, err := core.NewGraph(total, append([]core.GraphOption{core.WithSymmetricAdjacency()}, opts...)...)
	if err != nil {
		return nil, err
	}
	for id := 0; id < total; id++ {
		if _, err = g.CreateNode(id); err != nil {
			return nil, err
		}
	}

	minCost := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			v := gg.CellValues[y][x]
			if minCost == 0 || v < minCost {
				minCost = v
			}
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// each pair once, from its lower identity
				if !gg.Passable(nx, ny) || gg.Index(nx, ny) < u {
					continue
				}
				w := max(v, gg.CellValues[ny][nx])
				if err = g.AddEdge(u, gg.Index(nx, ny), core.WithWeight(int64(w))); err != nil {
					return nil, err
				}
			}
		}
	}

	if goal < 0 {
		return g, nil
	}
	gx, gy := gg.Coordinate(goal)
	for id := 0; id < total; id++ {
		x, y := gg.Coordinate(id)
		if err = g.SetHeuristic(id, int64(minCost*gg.distance(x, y, gx, gy))); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// distance is the step count between two cells ignoring walls.
func (gg *GridGraph) distance(x1, y1, x2, y2 int) int {
	dx, dy := abs(x1-x2), abs(y1-y2)
	if gg.Conn == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
