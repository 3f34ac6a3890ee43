// Package fitcurve_test provides runnable examples for the fitting layer.
package fitcurve_test

import (
	"fmt"

	"github.com/katalvlaran/scalefit/fitcurve"
)

// ExampleFit demonstrates recovering the parameters of a noiseless linear
// series: values were synthesized as 2·n + 3, and the fit finds exactly that.
func ExampleFit() {
	// 1) A noiseless series over sizes 5..25.
	sizes := []float64{5, 10, 15, 20, 25}
	values := []float64{13, 23, 33, 43, 53} // 2·n + 3

	// 2) Fit the linear model; the solve is exact, no iteration involved.
	fit, err := fitcurve.Fit(sizes, values, fitcurve.Linear)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Report parameters and the goodness of fit.
	fmt.Printf("%s: a=%.2f b=%.2f R2=%.3f\n", fit.Model, fit.A, fit.B, fit.R2)
	// Output: linear: a=2.00 b=3.00 R2=1.000
}

// ExampleBest demonstrates the multi-model comparison: every model is
// fitted to a √n-shaped series and the ranking picks the generating family.
func ExampleBest() {
	sizes := []float64{5, 10, 15, 20, 25, 30, 35, 40, 45, 50}
	values := make([]float64, len(sizes))
	for i, x := range sizes {
		values[i] = 3*fitcurve.Sqrt.Basis(x) + 1 // 3·√n + 1
	}

	fits, failed := fitcurve.FitAll(sizes, values)
	if len(failed) > 0 {
		fmt.Println("unexpected failures:", failed)
		return
	}

	best, err := fitcurve.Best(fits)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("best model: %s (R2=%.3f)\n", best.Model, best.R2)
	// Output: best model: sqrt (R2=1.000)
}
