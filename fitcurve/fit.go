package fitcurve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit solves for (a, b) minimizing Σ (a·f(sizes[i]) + b − values[i])² for
// the requested model and scores the result with R².
//
// The models are linear in (a, b), so the normal problem is solved exactly
// by QR factorization of the [f(n), 1] design matrix — no iteration and no
// internal retry; numerical failure surfaces as ErrFitDidNotConverge and
// the caller decides whether to drop the model from comparison.
//
// Preconditions (in order):
//  1. len(sizes) == len(values) and ≥ MinPoints (ErrInsufficientData).
//  2. every sizes[i] ≥ 1 (ErrBadSize).
//  3. model in the fixed set (ErrUnknownModel).
//
// Complexity: O(p) time for p points (fixed 2-column QR), O(p) space.
func Fit(sizes, values []float64, model Model) (FitResult, error) {
	// 1) Alignment and minimum-length checks.
	p := len(sizes)
	if p != len(values) {
		return FitResult{}, fmt.Errorf("Fit(%s): %d sizes vs %d values: %w", model, p, len(values), ErrInsufficientData)
	}
	if p < MinPoints {
		return FitResult{}, fmt.Errorf("Fit(%s): %d points: %w", model, p, ErrInsufficientData)
	}

	// 2) Domain check: the log/sqrt bases need sizes ≥ 1.
	for i, x := range sizes {
		if x < 1 {
			return FitResult{}, fmt.Errorf("Fit(%s): sizes[%d]=%g: %w", model, i, x, ErrBadSize)
		}
	}

	// 3) Model-set check.
	if !model.Valid() {
		return FitResult{}, fmt.Errorf("Fit(%q): %w", model, ErrUnknownModel)
	}

	// 4) Design matrix [f(n) 1] and observation vector.
	design := mat.NewDense(p, paramCount, nil)
	for i, x := range sizes {
		design.Set(i, 0, model.Basis(x))
		design.Set(i, 1, 1)
	}
	obs := mat.NewVecDense(p, values)

	// 5) Exact least squares via QR; a singular design matrix (e.g. a
	//    constant basis column) fails here rather than fabricating params.
	var qr mat.QR
	qr.Factorize(design)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, obs); err != nil {
		return FitResult{}, fmt.Errorf("Fit(%s): %v: %w", model, err, ErrFitDidNotConverge)
	}

	a, b := sol.AtVec(0), sol.AtVec(1)
	if !isFinite(a) || !isFinite(b) {
		return FitResult{}, fmt.Errorf("Fit(%s): non-finite parameters: %w", model, ErrFitDidNotConverge)
	}

	// 6) R² = 1 − SSres/SStot. Negative values are valid results.
	resid := make([]float64, p)
	for i, x := range sizes {
		resid[i] = a*model.Basis(x) + b - values[i]
	}
	ssRes := floats.Dot(resid, resid)

	mean := stat.Mean(values, nil)
	ssTot := 0.0
	var d float64
	for _, v := range values {
		d = v - mean
		ssTot += d * d
	}

	r2 := 1.0
	switch {
	case ssTot > 0:
		r2 = 1 - ssRes/ssTot
	case ssRes > zeroResidual*(1+mean*mean)*float64(p):
		// Zero-variance observations the model still misses: by the R²
		// definition the explained fraction collapses to −∞. Residuals at
		// round-off scale count as an exact fit instead.
		r2 = math.Inf(-1)
	}

	return FitResult{Model: model, A: a, B: b, R2: r2}, nil
}

// FitAll fits every requested model (the full fixed set when models is
// empty) against the same series. Failing models land in the failure map
// and are excluded from ranking; the remaining fits proceed — a per-model
// error never aborts the comparison.
//
// The returned fits preserve the request order.
func FitAll(sizes, values []float64, models ...Model) ([]FitResult, map[Model]error) {
	if len(models) == 0 {
		models = Models()
	}

	fits := make([]FitResult, 0, len(models))
	failed := make(map[Model]error)
	for _, m := range models {
		fit, err := Fit(sizes, values, m)
		if err != nil {
			failed[m] = err

			continue
		}
		fits = append(fits, fit)
	}

	return fits, failed
}

// Best ranks successful fits and returns the winner: highest R², exact
// ties broken by fewer free parameters, then by model declaration order.
// The tie-break policy is this package's addition — the measurement layer
// itself never picks a winner.
//
// Errors: ErrNoFits when fits is empty.
func Best(fits []FitResult) (FitResult, error) {
	if len(fits) == 0 {
		return FitResult{}, ErrNoFits
	}

	best := fits[0]
	for _, f := range fits[1:] {
		if better(f, best) {
			best = f
		}
	}

	return best, nil
}

// better reports whether candidate c outranks incumbent b.
func better(c, b FitResult) bool {
	if c.R2 != b.R2 {
		return c.R2 > b.R2
	}
	if c.Model.ParamCount() != b.Model.ParamCount() {
		return c.Model.ParamCount() < b.Model.ParamCount()
	}

	return c.Model.rank() < b.Model.rank()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
