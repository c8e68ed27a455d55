// Package core defines the central Graph and Node types of the search engine,
// together with the edge-weight and heuristic policy every search strategy
// consults.
//
// This file declares Node, Graph, GraphOption, EdgeOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph             - graph pointer is nil.
//	ErrNodeCount            - negative node count at construction.
//	ErrInvalidNodeIdentity  - node identity outside [0, N).
//	ErrDuplicateNode        - node identity already created.
//	ErrNodeNotFound         - identity is in range but the node was never created.
//	ErrNegativeWeight       - explicit edge weight below zero.
//	ErrWeightTooLarge       - explicit edge weight above MaxWeight.
//	ErrHeuristicRange       - heuristic outside [0, MaxWeight].
//	ErrRunInProgress        - topology or heuristic mutation during a search run.
package core

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeCount indicates NewGraph was called with a negative node count.
	ErrNodeCount = errors.New("core: node count must be non-negative")

	// ErrInvalidNodeIdentity indicates a node identity outside [0, N).
	ErrInvalidNodeIdentity = errors.New("core: invalid node identity")

	// ErrDuplicateNode indicates CreateNode was called twice for one identity.
	ErrDuplicateNode = errors.New("core: node already created")

	// ErrNodeNotFound indicates an in-range identity whose node was never created.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an explicit edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightTooLarge indicates an explicit edge weight above MaxWeight.
	ErrWeightTooLarge = errors.New("core: edge weight too large")

	// ErrHeuristicRange indicates a heuristic outside [0, MaxWeight].
	ErrHeuristicRange = errors.New("core: heuristic out of range")

	// ErrRunInProgress indicates a mutation that would change heuristics or
	// topology while a search run is using them.
	ErrRunInProgress = errors.New("core: search run in progress")
)

// Infinity is the distance of a node not yet reached in the current run.
// MinUnvisited never selects a node at Infinity.
const Infinity int64 = math.MaxInt64

// MaxCost is the largest finite distance. Sums that would pass it saturate
// here, so a reached node never wraps negative or collides with Infinity.
const MaxCost = Infinity - 1

// MaxWeight bounds explicit edge weights and heuristics.
const MaxWeight = Infinity / 2

// NoParent is the parent identity of a node without a predecessor.
const NoParent = -1

// unsetWeight marks a weight-cache cell that has not been resolved yet.
const unsetWeight int64 = -1

// Node is a plain data record held in the Graph arena.
//
// Identity is fixed at creation. Distance and parent are per-run state and are
// reset by Graph.BeginRun. The heuristic is static annotation data.
type Node struct {
	id int

	// distance is the running cost-from-root (Dijkstra) or f-score (A*).
	distance int64

	heuristic    int64
	hasHeuristic bool

	// parent is a non-owning back-reference by identity; NoParent when absent.
	parent int
}

// ID returns the node identity.
func (n *Node) ID() int { return n.id }

// Distance returns the node's running distance for the current run.
func (n *Node) Distance() int64 { return n.distance }

// Parent returns the predecessor identity recorded during the current run.
// ok is false when the node has no parent.
func (n *Node) Parent() (id int, ok bool) {
	if n.parent == NoParent {
		return NoParent, false
	}

	return n.parent, true
}

// Heuristic returns the pre-set heuristic annotation, if any.
func (n *Node) Heuristic() (h int64, ok bool) { return n.heuristic, n.hasHeuristic }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSymmetricAdjacency makes AddEdge record the child→parent relation as
// well, so edges are traversable in both directions.
// Without it adjacency is directional per AddEdge call while weights stay symmetric.
func WithSymmetricAdjacency() GraphOption {
	return func(g *Graph) { g.symmetric = true }
}

// WithSeed seeds the random source used to fill unset edge weights.
// Seed 0 selects the fixed default seed.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.source = rngFromSeed(seed) }
}

// WithWeightSource installs a custom source for unset edge weights.
// A nil source is ignored.
func WithWeightSource(src WeightSource) GraphOption {
	return func(g *Graph) {
		if src != nil {
			g.source = src
		}
	}
}

// WithLogger attaches a structured logger. Search strategies log run events
// at debug level through it. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight    int64
	hasWeight bool
}

// WithWeight supplies an explicit weight for the edge. Without it the weight
// is resolved lazily from the graph's random source on first use.
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.hasWeight = true
	}
}

// Graph owns a fixed set of N node slots, the adjacency relation and the
// N×N symmetric weight cache.
//
// A Graph is not safe for concurrent use: per-run state (distance, parent,
// visited flags) is shared and unguarded. Read-only queries between runs are fine.
type Graph struct {
	// Configuration
	symmetric bool
	source    WeightSource
	logger    *slog.Logger

	// Storage
	n        int
	slots    []*Node // identity → node (nil until created)
	order    []*Node // creation order, used for tie-breaking
	children [][]int // identity → child identities in AddEdge order
	weights  [][]int64

	// Per-run state
	visited []bool
	running bool
}

// NewGraph creates a Graph with room for n nodes, identities [0, n).
// By default adjacency is directional, the weight source is seeded with the
// default seed and logging is discarded.
// Complexity: O(n²) for the weight cache.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNodeCount
	}

	g := &Graph{
		source:   rngFromSeed(0),
		logger:   slog.New(slog.DiscardHandler),
		n:        n,
		slots:    make([]*Node, n),
		order:    make([]*Node, 0, n),
		children: make([][]int, n),
		weights:  make([][]int64, n),
		visited:  make([]bool, n),
	}
	for i := range g.weights {
		row := make([]int64, n)
		for j := range row {
			row[j] = unsetWeight
		}
		g.weights[i] = row
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Len returns the node capacity N fixed at construction.
func (g *Graph) Len() int { return g.n }

// Logger returns the graph's structured logger (never nil).
func (g *Graph) Logger() *slog.Logger { return g.logger }

// SymmetricAdjacency reports whether AddEdge records both directions.
func (g *Graph) SymmetricAdjacency() bool { return g.symmetric }
