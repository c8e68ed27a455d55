// Package builder generates search fixtures: deterministic topologies
// (path, cycle, star, complete, grid, random sparse) emitted straight into a
// core.Graph with integer identities [0, n).
//
// The package offers the following key components:
//
//   - BuildGraph(gopts, bopts, cons...): sizes the graph for the largest
//     constructor, creates every node in identity order and applies the
//     constructors in order. Constructors compose over the same identity range,
//     so Path(n) followed by RandomSparse(n, p) yields a connected random graph.
//   - Weight policy (BuilderOption):
//     – default:            no explicit weight; the engine draws it lazily
//     from its own seeded source.
//     – WithConstWeight:    every emitted edge gets the same weight.
//     – WithUniformWeights: weights drawn from the builder RNG in [lo, hi].
//     – WithWeightFn:       any custom generator.
//   - Direction policy: edges are undirected by default. On a graph without
//     symmetric adjacency the builder adds the reverse arc itself;
//     WithDirected() emits forward arcs only.
//   - Heuristics: WithHeuristicGoal(goal) annotates Grid nodes with the
//     Manhattan distance to goal, which is admissible whenever every weight
//     is at least 1.
//   - ParseTopology("grid:8x8") turns a short textual form into a Constructor
//     for command-line use.
//
// Guarantees:
//
//   - Determinism: same options, seeds and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrBadTopology) for invalid build parameters.
package builder
