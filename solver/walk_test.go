package solver_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/scalefit/problem"
	"github.com/katalvlaran/scalefit/solver"
)

func TestWalk_RegisterSizing(t *testing.T) {
	// Fixture: 5 nodes ⇒ 3 position qubits; max degree 4 ⇒ 2 coin qubits.
	art, err := solver.NewWalk().Prepare(problem.Example())
	if err != nil {
		t.Fatal(err)
	}
	if art.Width() != 5 {
		t.Fatalf("register width = %d; want 5 (3 position + 2 coin)", art.Width())
	}

	wc := art.(*solver.WalkCircuit)
	// Default step count is ⌈√5⌉ = 3.
	if wc.Steps() != 3 {
		t.Fatalf("steps = %d; want 3", wc.Steps())
	}
}

func TestWalk_StructuralMetrics(t *testing.T) {
	art, err := solver.NewWalk(solver.WithSteps(4)).Prepare(problem.Example())
	if err != nil {
		t.Fatal(err)
	}

	// 3 initial H + per step (2 coin H + 3 conditional shifts) × 4 steps.
	if got, want := art.Operations(), 3+4*(2+3); got != want {
		t.Fatalf("operations = %d; want %d", got, want)
	}
	// Coin H's are parallel; each shift touches the full coin register, so
	// the three shifts of a step stack: per step depth 1 + 3. The initial
	// H layer overlaps step 1's coin layer (disjoint registers).
	if art.Depth() < 4*4 {
		t.Fatalf("depth = %d; want ≥ %d", art.Depth(), 4*4)
	}
}

func TestWalk_DeterministicExecution(t *testing.T) {
	adapter := solver.NewWalk(solver.WithSeed(42), solver.WithShots(256))
	art, err := adapter.Prepare(problem.Example())
	if err != nil {
		t.Fatal(err)
	}

	first, err := adapter.Execute(art)
	if err != nil {
		t.Fatal(err)
	}
	second, err := adapter.Execute(art)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated Execute with a fixed seed diverged")
	}
}

func TestWalk_OutcomeShape(t *testing.T) {
	adapter := solver.NewWalk(solver.WithSeed(7), solver.WithShots(128))
	art, _ := adapter.Prepare(problem.Example())
	out, err := adapter.Execute(art)
	if err != nil {
		t.Fatal(err)
	}

	so, ok := out.(solver.SampleOutcome)
	if !ok {
		t.Fatalf("outcome kind = %q; want samples", out.Kind())
	}
	if so.Shots != 128 {
		t.Fatalf("shots = %d; want 128", so.Shots)
	}

	total := 0
	for bits, c := range so.Counts {
		if len(bits) != 3 {
			t.Fatalf("bitstring %q is not position-register sized", bits)
		}
		total += c
	}
	if total != 128 {
		t.Fatalf("counts sum to %d; want 128", total)
	}
}

func TestWalk_RejectsSmallInstance(t *testing.T) {
	inst, _ := problem.New(1, nil)
	if _, err := solver.NewWalk().Prepare(inst); !errors.Is(err, solver.ErrInvalidInstance) {
		t.Fatalf("expected ErrInvalidInstance, got %v", err)
	}
}
