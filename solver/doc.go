// Package solver defines the adapter contract every search strategy
// implements, plus the three built-in adapters the scaling harness
// compares: a classical shortest-path solver and two circuit-based ones.
//
// Contract (one capability, two phases):
//
//	Prepare(inst) — construct the computational structure for an instance.
//	                The returned Artifact exposes the static structural
//	                metrics (Depth, Operations, Width) without executing
//	                anything.
//	Execute(art)  — run or emulate the prepared structure and return the
//	                solver-specific Outcome.
//
// The split exists so the metric collector can time construction and
// execution independently; callers must never fold the two costs into one
// number. Adapters never mutate the instance and are deterministic for a
// fixed seed supplied at construction (WithSeed).
//
// Built-in adapters:
//
//   - Classical    — Dijkstra with a lazy-decrease-key binary heap.
//     Construction is trivial (depth 0, ops 0, width 1); the whole cost
//     sits in Execute.
//   - Walk         — coined-quantum-walk circuit over ⌈log2 n⌉ position
//     qubits plus a coin register; Execute emulates measurement sampling
//     with a seeded classical walk. This is an emulation of outcome
//     statistics, not a statevector simulation.
//   - Variational  — QAOA-style layered cost/mixer circuit over one qubit
//     per node. Above the qubit cap the adapter deterministically derives
//     a complexity-bounded analogue (induced subgraph on the first m
//     nodes) and reports it via VariationalCircuit.Scaled — an explicit,
//     documented deviation from the shared-instance rule, never a silent
//     one.
//
// Errors (sentinel):
//
//	ErrNilInstance     — nil instance.
//	ErrInvalidInstance — instance with fewer than 2 nodes.
//	ErrBadEndpoint     — source/target outside the node range.
//	ErrNoPath          — target unreachable from source.
//	ErrBadArtifact     — Execute given an artifact from another adapter.
package solver
