// walk.go — coined-quantum-walk adapter.
//
// Structure (Prepare):
//
//	Position register of ⌈log2 n⌉ qubits addresses the n nodes; a coin
//	register of ⌈log2 maxDegree⌉ qubits selects the outgoing arc. Each walk
//	step is one coin layer (H on every coin qubit, mutually parallel) plus
//	one conditional-shift layer (per position bit, controlled on the full
//	coin register, hence sequential). The default step count is ⌈√n⌉, the
//	usual quantum-walk mixing horizon.
//
// Execution (Execute):
//
//	Measurement statistics are emulated by seeded classical walks: Shots
//	independent walks from the source, each final position recorded as a
//	bitstring of the position register. The emulation is deterministic per
//	seed. It reproduces outcome *shape*, not amplitudes — this module is a
//	scaling harness, not a quantum-correctness study.
package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/scalefit/circuit"
	"github.com/katalvlaran/scalefit/problem"
)

// walkName labels the adapter in sweep records.
const walkName = "walk"

// Gate mnemonics used by the walk circuit.
const (
	gateH      = "H"
	gateCShift = "CSHIFT"
)

// Walk is the coined-quantum-walk adapter.
type Walk struct {
	cfg config
}

// NewWalk builds the walk adapter. Relevant options: WithSeed, WithShots,
// WithSteps, WithEndpoints (the walk starts at the source node).
func NewWalk(opts ...Option) *Walk {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Walk{cfg: cfg}
}

// Name reports "walk".
func (w *Walk) Name() string { return walkName }

// WalkCircuit is the walk artifact: the constructed step circuit plus the
// sampling parameters Execute needs.
type WalkCircuit struct {
	inst      *problem.Instance
	circ      *circuit.Circuit
	src       int
	steps     int
	posQubits int
}

// Depth reports the critical-path layer count of the step circuit.
func (a *WalkCircuit) Depth() int { return a.circ.Depth() }

// Operations reports the total gate count of the step circuit.
func (a *WalkCircuit) Operations() int { return a.circ.Operations() }

// Width reports the full register width: position + coin qubits.
func (a *WalkCircuit) Width() int { return a.circ.Width() }

// Steps reports the walk step count the circuit encodes.
func (a *WalkCircuit) Steps() int { return a.steps }

// Prepare builds the step circuit for inst.
//
// Errors: ErrNilInstance, ErrInvalidInstance, ErrBadEndpoint; circuit
// construction errors are wrapped (they indicate a bug, not bad input).
// Complexity: O(steps · (log n + log dmax)) gates.
func (w *Walk) Prepare(inst *problem.Instance) (Artifact, error) {
	// 1) Shared validation and endpoint resolution.
	src, _, err := validateInstance(inst, w.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: Prepare: %w", walkName, err)
	}

	// 2) Register sizing: positions address nodes, coins address arcs.
	n := inst.N()
	posQubits := ceilLog2(n)
	coinQubits := ceilLog2(inst.MaxDegree())

	steps := w.cfg.steps
	if steps == 0 {
		steps = int(math.Ceil(math.Sqrt(float64(n))))
	}

	circ, err := circuit.New(posQubits + coinQubits)
	if err != nil {
		return nil, fmt.Errorf("%s: Prepare: %w", walkName, err)
	}

	// 3) Initial superposition over the position register.
	var q, b, s int
	for q = 0; q < posQubits; q++ {
		if err = circ.Apply(gateH, q); err != nil {
			return nil, fmt.Errorf("%s: Prepare: %w", walkName, err)
		}
	}

	// 4) Per step: coin layer, then the conditional shift per position bit.
	coin := make([]int, coinQubits)
	for q = 0; q < coinQubits; q++ {
		coin[q] = posQubits + q
	}
	for s = 0; s < steps; s++ {
		for _, q = range coin {
			if err = circ.Apply(gateH, q); err != nil {
				return nil, fmt.Errorf("%s: Prepare: %w", walkName, err)
			}
		}
		for b = 0; b < posQubits; b++ {
			if err = circ.Apply(gateCShift, append(append([]int{}, coin...), b)...); err != nil {
				return nil, fmt.Errorf("%s: Prepare: %w", walkName, err)
			}
		}
	}

	return &WalkCircuit{inst: inst, circ: circ, src: src, steps: steps, posQubits: posQubits}, nil
}

// Execute emulates circuit measurement with seeded classical walks and
// returns the outcome-frequency table over final positions.
//
// Errors: ErrBadArtifact for a foreign artifact.
// Complexity: O(shots · steps).
func (w *Walk) Execute(art Artifact) (Outcome, error) {
	wc, ok := art.(*WalkCircuit)
	if !ok {
		return nil, fmt.Errorf("%s: Execute: %w", walkName, ErrBadArtifact)
	}

	// A fresh RNG per execution keeps repeated Execute calls identical.
	rng := rand.New(rand.NewSource(w.cfg.seed))

	counts := make(map[string]int)
	var (
		node, s int
		arcs    []problem.Arc
		err     error
	)
	for shot := 0; shot < w.cfg.shots; shot++ {
		node = wc.src
		for s = 0; s < wc.steps; s++ {
			if arcs, err = wc.inst.Neighbors(node); err != nil {
				return nil, fmt.Errorf("%s: Execute: %w", walkName, err)
			}
			// Isolated node: the walker has nowhere to go and stays put.
			if len(arcs) == 0 {
				break
			}
			node = arcs[rng.Intn(len(arcs))].To
		}
		counts[fmt.Sprintf("%0*b", wc.posQubits, node)]++
	}

	return SampleOutcome{Counts: counts, Shots: w.cfg.shots}, nil
}
