// Package scaling_test provides a runnable example for the sweep driver.
package scaling_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/scalefit/scaling"
	"github.com/katalvlaran/scalefit/solver"
)

// ExampleSweep runs a small sweep with the classical adapter and prints the
// structural series, which are deterministic (timings are not).
func ExampleSweep() {
	records, err := scaling.Sweep(context.Background(),
		scaling.SizeRange{Min: 4, Max: 12, Step: 4},
		scaling.SeededGenerator(7),
		solver.NewClassical())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rec := records["classical"]
	fmt.Printf("sizes=%v\n", rec.Sizes)
	fmt.Printf("ops=%v\n", rec.Series[scaling.MetricTotalOperations])
	fmt.Printf("width=%v\n", rec.Series[scaling.MetricResourceWidth])
	// Output:
	// sizes=[4 8 12]
	// ops=[0 0 0]
	// width=[1 1 1]
}
