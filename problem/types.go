// Package problem declares the Instance and Edge types and the sentinel
// errors shared by every constructor in this package.
//
// Error policy (strict, matching the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context via fmt.Errorf("...: %w", ErrX).
//   - No panics at runtime; panics are confined to option constructors
//     (WithX...) and indicate programmer error.
package problem

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for instance construction and validation.
var (
	// ErrTooFewNodes indicates a node count below the minimum for the
	// requested operation (n < 1 for construction, n < 2 for solving).
	ErrTooFewNodes = errors.New("problem: too few nodes")

	// ErrBadEdge indicates an edge endpoint outside 0..N-1 or a self-loop.
	ErrBadEdge = errors.New("problem: invalid edge")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("problem: edge weight must be positive")
)

// Edge is one undirected weighted edge between nodes U and V.
// Weight must be strictly positive; Instance validation enforces this.
type Edge struct {
	U, V   int   // endpoints, 0 ≤ U,V < N, U ≠ V
	Weight int64 // strictly positive cost
}

// Arc is a directed half-edge as seen from one endpoint, used by the
// adjacency view returned from Neighbors.
type Arc struct {
	To     int   // neighbor node ID
	Weight int64 // weight of the underlying undirected edge
}

// Instance is an immutable undirected weighted graph over nodes 0..N-1.
// Construct via New, Generate or Example; never mutate the returned value.
type Instance struct {
	n     int
	edges []Edge
	adj   [][]Arc
}

// New validates (n, edges) and builds an Instance with its adjacency view.
//
// Validation order:
//  1. n ≥ 1 (ErrTooFewNodes).
//  2. every endpoint in 0..n-1 and U ≠ V (ErrBadEdge).
//  3. every weight > 0 (ErrBadWeight).
//
// Complexity: O(V + E) time and space.
func New(n int, edges []Edge) (*Instance, error) {
	// 1) Node-count domain check.
	if n < 1 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooFewNodes)
	}

	// 2+3) Per-edge validation before any allocation-heavy work.
	var e Edge
	for i := range edges {
		e = edges[i]
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return nil, fmt.Errorf("New: edge[%d]=%d–%d: %w", i, e.U, e.V, ErrBadEdge)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("New: edge[%d]=%d–%d weight=%d: %w", i, e.U, e.V, e.Weight, ErrBadWeight)
		}
	}

	// Copy the edge list so later caller mutation cannot reach the instance.
	owned := make([]Edge, len(edges))
	copy(owned, edges)

	// Build the adjacency view once; both directions for undirected edges.
	adj := make([][]Arc, n)
	for _, e = range owned {
		adj[e.U] = append(adj[e.U], Arc{To: e.V, Weight: e.Weight})
		adj[e.V] = append(adj[e.V], Arc{To: e.U, Weight: e.Weight})
	}

	// Stable neighbor order keeps every downstream traversal deterministic.
	for _, arcs := range adj {
		sort.Slice(arcs, func(i, j int) bool {
			if arcs[i].To != arcs[j].To {
				return arcs[i].To < arcs[j].To
			}

			return arcs[i].Weight < arcs[j].Weight
		})
	}

	return &Instance{n: n, edges: owned, adj: adj}, nil
}

// N reports the node count (the "instance size" of every scaling study).
func (in *Instance) N() int { return in.n }

// EdgeCount reports the number of undirected edges.
func (in *Instance) EdgeCount() int { return len(in.edges) }

// Edges returns a copy of the edge list; the instance stays immutable.
// Complexity: O(E).
func (in *Instance) Edges() []Edge {
	out := make([]Edge, len(in.edges))
	copy(out, in.edges)

	return out
}

// Neighbors returns the arcs incident to node u in ascending neighbor order.
// The returned slice is shared read-only state: callers must not modify it.
//
// Errors: ErrBadEdge if u is outside 0..N-1.
// Complexity: O(1).
func (in *Instance) Neighbors(u int) ([]Arc, error) {
	if u < 0 || u >= in.n {
		return nil, fmt.Errorf("Neighbors: node %d: %w", u, ErrBadEdge)
	}

	return in.adj[u], nil
}

// MaxDegree reports the largest node degree, 0 for an edgeless instance.
// Complexity: O(V).
func (in *Instance) MaxDegree() int {
	best := 0
	for _, arcs := range in.adj {
		if len(arcs) > best {
			best = len(arcs)
		}
	}

	return best
}
