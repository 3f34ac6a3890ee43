// Package problem defines the weighted-graph problem instances consumed by
// every solver adapter, plus a deterministic generator for scaling sweeps.
//
// What is an Instance?
//
//	An undirected weighted graph over integer node IDs 0..N-1.
//	Every edge carries a strictly positive int64 weight. Instances are
//	value objects: once constructed (and validated) they are never mutated
//	by any consumer — solvers, collectors and studies all treat them as
//	read-only.
//
// Construction paths:
//
//   - New(n, edges)       — explicit instance from caller-supplied edges.
//   - Generate(n, opts…)  — seeded random instance with ≈2n edges:
//     a random spanning path (connectivity) plus uniformly sampled extra
//     edges, uniform integer weights in [1, MaxWeight].
//   - Example()           — the canonical 5-node fixture used throughout
//     the test-suite (shortest path 0→4 costs exactly 6).
//
// Determinism:
//
//	Generate is fully deterministic for a fixed (n, seed, options) tuple:
//	same inputs ⇒ identical edge list, identical weights. Sweeps rely on
//	this to reproduce a run bit-for-bit.
//
// Errors (sentinel):
//
//	ErrTooFewNodes — n < 1 (or n < 2 where two endpoints are required).
//	ErrBadEdge     — endpoint out of range, or a self-loop.
//	ErrBadWeight   — non-positive edge weight.
//
// Complexity:
//
//	New:      O(V + E) validation + adjacency build.
//	Generate: O(E) expected; extra-edge sampling uses rejection with a
//	          bounded number of attempts per edge.
package problem
