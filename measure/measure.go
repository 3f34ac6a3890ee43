package measure

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/scalefit/problem"
	"github.com/katalvlaran/scalefit/solver"
)

// Sentinel errors for collector input validation.
var (
	// ErrNilAdapter indicates a nil solver adapter.
	ErrNilAdapter = errors.New("measure: adapter is nil")

	// ErrNilInstance indicates a nil problem instance.
	ErrNilInstance = errors.New("measure: instance is nil")
)

// Metrics is the normalized per-(adapter, instance) record. Created once
// by Measure and never mutated; all downstream components read it by value.
type Metrics struct {
	Adapter string // adapter name as reported by Name()

	CreationSeconds   float64 // wall-clock Prepare time, ≥ 0
	SimulationSeconds float64 // wall-clock Execute time, ≥ 0

	StructuralDepth int // sequential-step count of the built structure, ≥ 0
	TotalOperations int // operation count of the built structure, ≥ 0
	ResourceWidth   int // parallel resource count (qubits/CPUs), ≥ 1

	Payload solver.Outcome // solver-specific result (path, samples, ...)
}

// Measure runs adapter against inst, timing the construction and the
// execution phases independently, and assembles the Metrics record.
//
// Adapter errors are wrapped with the adapter name so a sweep caller can
// attribute the failure; Measure itself adds no retry or fallback.
//
// Errors: ErrNilAdapter, ErrNilInstance, plus wrapped adapter errors.
// Complexity: the adapter's own Prepare + Execute cost; O(1) overhead.
func Measure(adapter solver.Adapter, inst *problem.Instance) (Metrics, error) {
	// 1) Input validation before any timing starts.
	if adapter == nil {
		return Metrics{}, ErrNilAdapter
	}
	if inst == nil {
		return Metrics{}, ErrNilInstance
	}

	// 2) Construction phase, timed in isolation.
	start := time.Now()
	art, err := adapter.Prepare(inst)
	creation := time.Since(start).Seconds()
	if err != nil {
		return Metrics{}, fmt.Errorf("measure: %s: %w", adapter.Name(), err)
	}

	// 3) Execution/simulation phase, timed in isolation.
	start = time.Now()
	payload, err := adapter.Execute(art)
	simulation := time.Since(start).Seconds()
	if err != nil {
		return Metrics{}, fmt.Errorf("measure: %s: %w", adapter.Name(), err)
	}

	// 4) Normalize into the uniform record shape; the structural figures
	//    come from the artifact and were fixed before execution began.
	return Metrics{
		Adapter:           adapter.Name(),
		CreationSeconds:   creation,
		SimulationSeconds: simulation,
		StructuralDepth:   art.Depth(),
		TotalOperations:   art.Operations(),
		ResourceWidth:     art.Width(),
		Payload:           payload,
	}, nil
}
