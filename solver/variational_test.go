package solver_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/scalefit/problem"
	"github.com/katalvlaran/scalefit/solver"
)

func TestVariational_FullWidthBelowCap(t *testing.T) {
	art, err := solver.NewVariational().Prepare(problem.Example())
	if err != nil {
		t.Fatal(err)
	}

	vc := art.(*solver.VariationalCircuit)
	if vc.Scaled() {
		t.Fatal("5-node instance must not be downscaled under the default cap")
	}
	if art.Width() != 5 || vc.EffectiveNodes() != 5 {
		t.Fatalf("width = %d effective = %d; want 5/5", art.Width(), vc.EffectiveNodes())
	}

	// 5 initial H + per layer (7 ZZ + 5 RX) × 2 default layers.
	if got, want := art.Operations(), 5+2*(7+5); got != want {
		t.Fatalf("operations = %d; want %d", got, want)
	}
	if art.Depth() < 1 {
		t.Fatal("layered ansatz must report positive depth")
	}
}

func TestVariational_DownscalesPastCap(t *testing.T) {
	inst, err := problem.Generate(40, problem.WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}

	art, err := solver.NewVariational(solver.WithQubitCap(8)).Prepare(inst)
	if err != nil {
		t.Fatal(err)
	}

	vc := art.(*solver.VariationalCircuit)
	if !vc.Scaled() {
		t.Fatal("40 nodes over an 8-qubit cap must report Scaled")
	}
	if art.Width() != 8 {
		t.Fatalf("width = %d; want the cap 8", art.Width())
	}
}

func TestVariational_DownscalingIsDeterministic(t *testing.T) {
	inst, _ := problem.Generate(40, problem.WithSeed(5))
	adapter := solver.NewVariational(solver.WithQubitCap(8))

	a, err := adapter.Prepare(inst)
	if err != nil {
		t.Fatal(err)
	}
	b, err := adapter.Prepare(inst)
	if err != nil {
		t.Fatal(err)
	}

	if a.Depth() != b.Depth() || a.Operations() != b.Operations() || a.Width() != b.Width() {
		t.Fatal("repeated Prepare produced different structures")
	}
}

func TestVariational_DeterministicExecution(t *testing.T) {
	adapter := solver.NewVariational(solver.WithSeed(42), solver.WithShots(64))
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

	so := first.(solver.SampleOutcome)
	total := 0
	for bits, c := range so.Counts {
		if len(bits) != 5 {
			t.Fatalf("bitstring %q is not register sized", bits)
		}
		total += c
	}
	if total != 64 {
		t.Fatalf("counts sum to %d; want 64", total)
	}
}
