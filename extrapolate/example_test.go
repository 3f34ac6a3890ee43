// Package extrapolate_test provides runnable examples for projection and
// crossover analysis.
package extrapolate_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scalefit/extrapolate"
	"github.com/katalvlaran/scalefit/fitcurve"
)

// ExampleFindCrossover demonstrates solving for the size where a √n-shaped
// cost overtakes a linear one: 10·√n = n exactly at n = 100.
func ExampleFindCrossover() {
	quantum := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 10, B: 0}
	classical := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}

	x, err := extrapolate.FindCrossover(quantum, classical, 50)
	switch {
	case errors.Is(err, extrapolate.ErrCrossoverDiverged):
		fmt.Println("root search diverged, try another seed")
	case errors.Is(err, extrapolate.ErrNoCrossover):
		fmt.Println("no crossover in range")
	case err != nil:
		fmt.Println("error:", err)
	default:
		fmt.Printf("crossover at n≈%.0f\n", x)
	}
	// Output: crossover at n≈100
}

// ExampleProject demonstrates projecting a fitted model beyond the measured
// range, charging the √n repetition heuristic on top of the raw cost.
func ExampleProject() {
	fit := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 2, B: 0}

	res, err := extrapolate.Project(fit, []float64{100, 10000},
		extrapolate.WithRepetitionPolicy(extrapolate.InverseSqrtSuccess))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, n := range res.Sizes {
		fmt.Printf("n=%.0f projected=%.0f\n", n, res.Values[i])
	}
	// Output:
	// n=100 projected=200
	// n=10000 projected=20000
}
