// Package solver_test provides runnable examples for the adapter layer.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/scalefit/problem"
	"github.com/katalvlaran/scalefit/solver"
)

// ExampleShortestPath demonstrates the classical solver on the canonical
// fixture: 0→4 costs 6 via the intermediate nodes 1 and 2.
func ExampleShortestPath() {
	// 1) The fixed 5-node instance (see problem.Example for the topology).
	inst := problem.Example()

	// 2) Compute the minimum-weight path from node 0 to node 4.
	path, length, err := solver.ShortestPath(inst, 0, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("path=%v length=%d\n", path, length)
	// Output: path=[0 1 2 4] length=6
}

// ExampleAdapter demonstrates the two-phase contract every adapter obeys:
// structural metrics come from Prepare, the payload from Execute.
func ExampleAdapter() {
	adapter := solver.NewWalk(solver.WithSeed(42), solver.WithSteps(2), solver.WithShots(100))

	art, err := adapter.Prepare(problem.Example())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// Static structural metrics, available before anything executes.
	fmt.Printf("width=%d ops=%d depth=%d\n", art.Width(), art.Operations(), art.Depth())

	out, err := adapter.Execute(art)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("outcome=%s shots=%d\n", out.Kind(), out.(solver.SampleOutcome).Shots)
	// Output:
	// width=5 ops=13 depth=8
	// outcome=samples shots=100
}
