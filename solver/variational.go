// variational.go — QAOA-style variational-circuit adapter.
//
// Structure (Prepare):
//
//	One qubit per node. An initial H layer, then Layers repetitions of a
//	cost layer (one two-qubit ZZ gate per edge) followed by a mixer layer
//	(one RX gate per qubit). Depth and gate count follow from the greedy
//	layering of the circuit package.
//
// Downscaling:
//
//	One qubit per node makes the register width linear in n, which is
//	intractable past a few dozen nodes. Above QubitCap the adapter derives
//	a complexity-bounded analogue: the induced subgraph on nodes 0..m-1
//	with m = QubitCap. The derivation is deterministic and surfaced via
//	Scaled()/EffectiveNodes() — the one documented exception to the
//	"same instance across adapters" sweep rule, never applied silently.
//
// Execution (Execute):
//
//	Seeded uniform bitstring sampling emulates the measurement statistics
//	of an untrained ansatz. Deterministic per seed; outcome *shape* only,
//	per the package's non-goal on quantum correctness.
package solver

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/scalefit/circuit"
	"github.com/katalvlaran/scalefit/problem"
)

// variationalName labels the adapter in sweep records.
const variationalName = "variational"

// Gate mnemonics used by the variational circuit.
const (
	gateZZ = "ZZ"
	gateRX = "RX"
)

// Variational is the QAOA-style adapter.
type Variational struct {
	cfg config
}

// NewVariational builds the variational adapter. Relevant options:
// WithSeed, WithShots, WithLayers, WithQubitCap.
func NewVariational(opts ...Option) *Variational {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Variational{cfg: cfg}
}

// Name reports "variational".
func (v *Variational) Name() string { return variationalName }

// VariationalCircuit is the variational artifact: the layered ansatz plus
// the downscaling bookkeeping.
type VariationalCircuit struct {
	circ    *circuit.Circuit
	nodes   int  // effective node count m (≤ instance N)
	scaled  bool // true when the instance was downscaled to the qubit cap
	layers  int
	sampled int // shots recorded at Prepare for Execute symmetry checks
}

// Depth reports the critical-path layer count of the ansatz.
func (a *VariationalCircuit) Depth() int { return a.circ.Depth() }

// Operations reports the total gate count of the ansatz.
func (a *VariationalCircuit) Operations() int { return a.circ.Operations() }

// Width reports the register width (one qubit per effective node).
func (a *VariationalCircuit) Width() int { return a.circ.Width() }

// Scaled reports whether the instance was downscaled to the qubit cap.
func (a *VariationalCircuit) Scaled() bool { return a.scaled }

// EffectiveNodes reports the node count the ansatz actually encodes.
func (a *VariationalCircuit) EffectiveNodes() int { return a.nodes }

// Layers reports the cost/mixer repetition count.
func (a *VariationalCircuit) Layers() int { return a.layers }

// Prepare builds the layered ansatz for inst (downscaled past QubitCap).
//
// Errors: ErrNilInstance, ErrInvalidInstance, ErrBadEndpoint.
// Complexity: O(layers · (V + E)) gates on the effective subgraph.
func (v *Variational) Prepare(inst *problem.Instance) (Artifact, error) {
	// 1) Shared validation (endpoints resolved but unused by this ansatz).
	if _, _, err := validateInstance(inst, v.cfg); err != nil {
		return nil, fmt.Errorf("%s: Prepare: %w", variationalName, err)
	}

	// 2) Deterministic downscaling to the qubit cap.
	m := inst.N()
	scaled := false
	if m > v.cfg.qubitCap {
		m = v.cfg.qubitCap
		scaled = true
	}

	circ, err := circuit.New(m)
	if err != nil {
		return nil, fmt.Errorf("%s: Prepare: %w", variationalName, err)
	}

	// 3) Initial superposition layer.
	var q int
	for q = 0; q < m; q++ {
		if err = circ.Apply(gateH, q); err != nil {
			return nil, fmt.Errorf("%s: Prepare: %w", variationalName, err)
		}
	}

	// 4) Layered ansatz over the induced subgraph on nodes 0..m-1.
	edges := inst.Edges()
	var (
		layer int
		e     problem.Edge
	)
	for layer = 0; layer < v.cfg.layers; layer++ {
		for _, e = range edges {
			if e.U >= m || e.V >= m {
				continue // edge leaves the effective subgraph
			}
			if err = circ.Apply(gateZZ, e.U, e.V); err != nil {
				return nil, fmt.Errorf("%s: Prepare: %w", variationalName, err)
			}
		}
		for q = 0; q < m; q++ {
			if err = circ.Apply(gateRX, q); err != nil {
				return nil, fmt.Errorf("%s: Prepare: %w", variationalName, err)
			}
		}
	}

	return &VariationalCircuit{
		circ:    circ,
		nodes:   m,
		scaled:  scaled,
		layers:  v.cfg.layers,
		sampled: v.cfg.shots,
	}, nil
}

// Execute emulates ansatz measurement with seeded uniform bitstring
// sampling and returns the outcome-frequency table.
//
// Errors: ErrBadArtifact for a foreign artifact.
// Complexity: O(shots · m).
func (v *Variational) Execute(art Artifact) (Outcome, error) {
	vc, ok := art.(*VariationalCircuit)
	if !ok {
		return nil, fmt.Errorf("%s: Execute: %w", variationalName, ErrBadArtifact)
	}

	// A fresh RNG per execution keeps repeated Execute calls identical.
	rng := rand.New(rand.NewSource(v.cfg.seed))

	counts := make(map[string]int)
	bits := make([]byte, vc.nodes)
	var q int
	for shot := 0; shot < vc.sampled; shot++ {
		for q = 0; q < vc.nodes; q++ {
			bits[q] = byte('0' + rng.Intn(2))
		}
		counts[string(bits)]++
	}

	return SampleOutcome{Counts: counts, Shots: vc.sampled}, nil
}
