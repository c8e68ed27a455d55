package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a map character ParseMap does not understand.
	ErrBadCell = errors.New("gridgraph: bad map cell")
	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
)
