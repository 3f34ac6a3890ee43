// generate.go — deterministic random instance generation for scaling sweeps,
// plus the fixed example fixture.
//
// Canonical model:
//   - Connectivity first: a random spanning path over a seeded permutation
//     of 0..n-1 (n-1 edges), so every generated instance is connected and
//     any (source, target) pair admits a finite shortest path.
//   - Density second: uniformly sampled extra edges (rejection sampling,
//     no loops, no duplicates) until the edge target ≈2n is reached or the
//     attempt budget runs out (dense corner: small n cannot host 2n edges).
//   - Weights: uniform integers in [1, MaxWeight].
//
// Determinism: a fixed (n, seed, options) tuple always yields the identical
// instance; sampling order is stable by construction.
package problem

import (
	"fmt"
	"math/rand"
)

// Defaults for Generate; override via functional options.
const (
	// DefaultSeed seeds the generator RNG when WithSeed is not supplied.
	DefaultSeed int64 = 1

	// DefaultMaxWeight is the inclusive upper bound for uniform weights.
	DefaultMaxWeight int64 = 10

	// edgeFactor sets the edge target as edgeFactor·n (the "≈2n" density
	// every scaling sweep is calibrated against).
	edgeFactor = 2

	// attemptFactor bounds rejection sampling: at most attemptFactor
	// attempts per requested extra edge before giving up on density.
	attemptFactor = 32
)

// genConfig is the resolved configuration for one Generate call.
type genConfig struct {
	seed      int64
	maxWeight int64
	edgeCount int // 0 ⇒ derive edgeFactor·n
}

// Option customizes Generate. Options validate eagerly and panic on
// programmer error, mirroring the module-wide option policy.
type Option func(*genConfig)

// WithSeed fixes the RNG seed; equal seeds yield equal instances.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.seed = seed }
}

// WithMaxWeight sets the inclusive upper bound for uniform integer weights.
// Panics if bound < 1.
func WithMaxWeight(bound int64) Option {
	if bound < 1 {
		panic(fmt.Sprintf("WithMaxWeight: bound must be ≥ 1, got %d", bound))
	}

	return func(c *genConfig) { c.maxWeight = bound }
}

// WithEdgeTarget overrides the ≈2n edge target. Panics if target < 0.
// A target below n-1 is raised to n-1: the spanning path is never dropped.
func WithEdgeTarget(target int) Option {
	if target < 0 {
		panic(fmt.Sprintf("WithEdgeTarget: target must be ≥ 0, got %d", target))
	}

	return func(c *genConfig) { c.edgeCount = target }
}

// Generate builds a connected random instance of n nodes with ≈2n edges and
// uniform integer weights in [1, MaxWeight]. Deterministic per (n, seed).
//
// Errors: ErrTooFewNodes if n < 1.
// Complexity: O(E) expected time, O(V + E) space.
func Generate(n int, opts ...Option) (*Instance, error) {
	// 1) Domain check before resolving options.
	if n < 1 {
		return nil, fmt.Errorf("Generate: n=%d: %w", n, ErrTooFewNodes)
	}

	// 2) Resolve configuration from defaults + options (stable order).
	cfg := genConfig{seed: DefaultSeed, maxWeight: DefaultMaxWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	target := cfg.edgeCount
	if target == 0 {
		target = edgeFactor * n
	}
	if target < n-1 {
		target = n - 1
	}
	// A simple graph on n nodes holds at most n(n-1)/2 edges.
	if limit := n * (n - 1) / 2; target > limit {
		target = limit
	}

	rng := rand.New(rand.NewSource(cfg.seed))

	// 3) Spanning path over a seeded permutation: guarantees connectivity.
	perm := rng.Perm(n)
	edges := make([]Edge, 0, target)
	seen := make(map[[2]int]bool, target)
	var u, v int
	for i := 1; i < n; i++ {
		u, v = perm[i-1], perm[i]
		if u > v {
			u, v = v, u
		}
		edges = append(edges, Edge{U: u, V: v, Weight: 1 + rng.Int63n(cfg.maxWeight)})
		seen[[2]int{u, v}] = true
	}

	// 4) Extra edges by rejection sampling up to the attempt budget.
	attempts := attemptFactor * target
	for len(edges) < target && attempts > 0 {
		attempts--
		u, v = rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		if seen[[2]int{u, v}] {
			continue
		}
		edges = append(edges, Edge{U: u, V: v, Weight: 1 + rng.Int63n(cfg.maxWeight)})
		seen[[2]int{u, v}] = true
	}

	// 5) Validate and freeze through the canonical constructor.
	return New(n, edges)
}

// Example returns the canonical 5-node fixture: the shortest path from
// node 0 to node 4 is [0 1 2 4] with total weight 6.
//
//	(0)—2—(1)—5—(3)—1—(4)
//	  \    |    /     /
//	   4   1   2     3
//	    \  |  /     /
//	     \ | /     /
//	      (2)—————
//
// Complexity: O(1).
func Example() *Instance {
	inst, err := New(5, []Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 0, V: 2, Weight: 4},
		{U: 1, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 5},
		{U: 2, V: 3, Weight: 2},
		{U: 2, V: 4, Weight: 3},
		{U: 3, V: 4, Weight: 1},
	})
	if err != nil {
		// The fixture is statically valid; reaching here is a programming error.
		panic(fmt.Sprintf("Example: fixture rejected: %v", err))
	}

	return inst
}
