// classical.go — the classical baseline: Dijkstra's algorithm with a
// lazy-decrease-key binary heap.
//
// Notes on implementation choices:
//
//   - Instances index nodes 0..N-1, so dist/prev/visited are slices, not maps.
//   - Lazy decrease-key: shorter distances push duplicate heap entries; stale
//     entries are skipped on pop via the visited slice.
//   - Instance validation guarantees non-negative weights, so no negative-
//     weight pre-scan is needed here.
package solver

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/scalefit/problem"
)

// classicalName labels the adapter in sweep records.
const classicalName = "classical"

// Classical is the Dijkstra-based adapter. Construction is trivial, so all
// measured cost falls into the execution phase; the collector still reports
// a (≈0) construction time to keep the record shape uniform.
type Classical struct {
	cfg config
}

// NewClassical builds the classical adapter with the given options.
// Relevant options: WithEndpoints. Seed options are accepted but unused:
// Dijkstra is deterministic by nature.
func NewClassical(opts ...Option) *Classical {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Classical{cfg: cfg}
}

// Name reports "classical".
func (c *Classical) Name() string { return classicalName }

// PathPlan is the classical artifact: it only pins the instance and the
// endpoint pair. A sequential single-CPU search has no circuit structure,
// so depth and operation count are 0 and width is 1.
type PathPlan struct {
	inst     *problem.Instance
	src, dst int
}

// Depth reports 0: no precomputed sequential structure exists.
func (*PathPlan) Depth() int { return 0 }

// Operations reports 0: nothing is constructed ahead of the search.
func (*PathPlan) Operations() int { return 0 }

// Width reports 1: one sequential processor.
func (*PathPlan) Width() int { return 1 }

// Prepare validates inst and pins the endpoint pair.
//
// Errors: ErrNilInstance, ErrInvalidInstance, ErrBadEndpoint.
// Complexity: O(1).
func (c *Classical) Prepare(inst *problem.Instance) (Artifact, error) {
	src, dst, err := validateInstance(inst, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: Prepare: %w", classicalName, err)
	}

	return &PathPlan{inst: inst, src: src, dst: dst}, nil
}

// Execute runs Dijkstra over the prepared plan.
//
// Errors: ErrBadArtifact for a foreign artifact; ErrNoPath if the target
// is unreachable.
// Complexity: O((V + E) log V).
func (c *Classical) Execute(art Artifact) (Outcome, error) {
	plan, ok := art.(*PathPlan)
	if !ok {
		return nil, fmt.Errorf("%s: Execute: %w", classicalName, ErrBadArtifact)
	}

	path, length, err := ShortestPath(plan.inst, plan.src, plan.dst)
	if err != nil {
		return nil, fmt.Errorf("%s: Execute: %w", classicalName, err)
	}

	return PathOutcome{Path: path, Length: length}, nil
}

// ShortestPath computes the minimum-weight path from src to dst in inst.
//
// Returns the node sequence src..dst and its total weight.
//
// Preconditions and validation (in order):
//  1. inst must be non-nil (ErrNilInstance).
//  2. inst must have ≥ 2 nodes (ErrInvalidInstance).
//  3. src and dst must lie in 0..N-1 (ErrBadEndpoint).
//
// Errors: ErrNoPath if dst is unreachable from src.
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(inst *problem.Instance, src, dst int) ([]int, int64, error) {
	// 1-3) Shared validation; a fixed endpoint pair, so cfg is synthetic.
	// Negative endpoints are rejected here: in config form a negative
	// target means "use N-1", which a direct call must not trigger.
	if src < 0 || dst < 0 {
		return nil, 0, fmt.Errorf("ShortestPath: source=%d target=%d: %w", src, dst, ErrBadEndpoint)
	}
	cfg := defaultConfig()
	cfg.source, cfg.target = src, dst
	if _, _, err := validateInstance(inst, cfg); err != nil {
		return nil, 0, fmt.Errorf("ShortestPath: %w", err)
	}

	n := inst.N()

	// 4) dist[v] = +∞, prev[v] = -1, visited[v] = false for all v.
	dist := make([]int64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		dist[v] = math.MaxInt64
		prev[v] = -1
	}
	dist[src] = 0

	// 5) Min-heap seeded with (src, 0).
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	// 6) Main loop: extract the closest unvisited node and relax its arcs.
	var (
		item    *nodeItem
		arcs    []problem.Arc
		a       problem.Arc
		u       int
		newDist int64
		err     error
	)
	for pq.Len() > 0 {
		item = heap.Pop(&pq).(*nodeItem)
		u = item.id

		// Skip stale entries left behind by lazy decrease-key.
		if visited[u] {
			continue
		}
		visited[u] = true

		// Early exit: dst is finalized, no further exploration needed.
		if u == dst {
			break
		}

		if arcs, err = inst.Neighbors(u); err != nil {
			return nil, 0, fmt.Errorf("ShortestPath: neighbors of %d: %w", u, err)
		}
		for _, a = range arcs {
			newDist = dist[u] + a.Weight
			if newDist >= dist[a.To] {
				continue
			}
			dist[a.To] = newDist
			prev[a.To] = u
			heap.Push(&pq, &nodeItem{id: a.To, dist: newDist})
		}
	}

	// 7) Unreachable target: report the sentinel, never a fabricated path.
	if dist[dst] == math.MaxInt64 {
		return nil, 0, fmt.Errorf("ShortestPath: %d→%d: %w", src, dst, ErrNoPath)
	}

	// 8) Reconstruct the path by walking predecessors back from dst.
	path := make([]int, 0, n)
	for v := dst; v != -1; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}

// nodeItem is one (node, distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: improved distances push duplicates and
// stale entries are ignored on pop.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by smaller distance first.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two heap elements.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
