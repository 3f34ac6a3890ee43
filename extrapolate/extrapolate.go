package extrapolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalefit/fitcurve"
)

// Project evaluates the fitted model at the target sizes, applying the
// configured repetition policy per size. Pure and deterministic: no new
// fitting occurs and identical inputs yield identical Results.
//
// Errors: ErrNoTargets for an empty list, ErrBadTarget for a size < 1.
// Complexity: O(len(targets)).
func Project(fit fitcurve.FitResult, targets []float64, opts ...Option) (Result, error) {
	// 1) Validate targets before evaluating anything.
	if len(targets) == 0 {
		return Result{}, fmt.Errorf("Project(%s): %w", fit.Model, ErrNoTargets)
	}
	for i, x := range targets {
		if x < minSize {
			return Result{}, fmt.Errorf("Project(%s): targets[%d]=%g: %w", fit.Model, i, x, ErrBadTarget)
		}
	}

	// 2) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Evaluate; the Result owns copies of both sequences.
	sizes := make([]float64, len(targets))
	values := make([]float64, len(targets))
	for i, x := range targets {
		sizes[i] = x
		values[i] = fit.Eval(x) * cfg.Repetition(x)
	}

	return Result{Model: fit.Model, Sizes: sizes, Values: values}, nil
}

// FindCrossover solves modelA(x) = modelB(x) for x with a damped Newton
// iteration seeded at seed, and accepts the root only inside [1, MaxSize]
// (default DefaultMaxSizeFactor × seed).
//
// Outcomes:
//
//   - (x, nil)                 — in-range crossover at size x.
//   - ErrNoCrossover           — the curves are effectively identical, the
//     difference cannot vanish, or the root lies outside the sane domain.
//     A normal result variant.
//   - ErrCrossoverDiverged     — the iteration failed to converge (wraps
//     ErrNoCrossover; the seed choice matters, retry with another one).
//
// Errors: ErrBadSeed for seed < 1.
// Complexity: O(MaxIterations) evaluations.
func FindCrossover(a, b fitcurve.FitResult, seed float64, opts ...Option) (float64, error) {
	// 1) Validate the seed and resolve options.
	if seed < minSize {
		return 0, fmt.Errorf("FindCrossover: seed=%g: %w", seed, ErrBadSeed)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSizeFactor * seed
	}

	// 2) Degenerate pairs have no finite distinct intersection: identical
	//    fitted curves, or same-shape curves that never meet. Reporting
	//    NoCrossover here beats letting Newton "converge" at the seed on a
	//    difference that is identically zero.
	if a.Model == b.Model {
		sameA := math.Abs(a.A-b.A) <= paramEps
		if sameA && math.Abs(a.B-b.B) <= paramEps {
			return 0, fmt.Errorf("FindCrossover: identical fits (%s): %w", a.Model, ErrNoCrossover)
		}
		if sameA {
			// Parallel curves: a·f + b1 vs a·f + b2 with b1 ≠ b2.
			return 0, fmt.Errorf("FindCrossover: parallel fits (%s): %w", a.Model, ErrNoCrossover)
		}
	}

	// diff and its derivative, both with closed-form evaluation.
	diff := func(x float64) float64 { return a.Eval(x) - b.Eval(x) }
	slope := func(x float64) float64 { return a.Slope(x) - b.Slope(x) }

	// 3) Damped Newton from the seed, clamped to the model domain edge so
	//    the log/sqrt bases stay defined throughout the iteration.
	x := seed
	var fx, dx, step float64
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		fx = diff(x)
		dx = slope(x)

		// A vanishing derivative stalls Newton; with these monotone bases
		// it only happens when the curves are effectively parallel here.
		if math.Abs(dx) < paramEps {
			return 0, fmt.Errorf("FindCrossover: flat difference near x=%g: %w", x, ErrCrossoverDiverged)
		}

		step = fx / dx
		x -= step
		if x < minSize {
			x = minSize
		}
		if !isFinite(x) {
			return 0, fmt.Errorf("FindCrossover: iterate diverged: %w", ErrCrossoverDiverged)
		}

		// Converged when the step is negligible relative to the iterate.
		if math.Abs(step) <= cfg.Tolerance*math.Max(1, math.Abs(x)) {
			return acceptRoot(x, diff, maxSize, cfg.Tolerance)
		}
	}

	return 0, fmt.Errorf("FindCrossover: %d iterations from seed %g: %w", cfg.MaxIterations, seed, ErrCrossoverDiverged)
}

// acceptRoot verifies a converged iterate: the residual must actually
// vanish and the root must sit inside the sane domain. Out-of-range roots
// are a normal NoCrossover outcome, never a fabricated number.
func acceptRoot(x float64, diff func(float64) float64, maxSize, tol float64) (float64, error) {
	// Residual check guards against "convergence" onto a domain clamp.
	res := math.Abs(diff(x))
	if res > math.Sqrt(tol)*math.Max(1, math.Abs(x)) {
		return 0, fmt.Errorf("FindCrossover: residual %g at x=%g: %w", res, x, ErrCrossoverDiverged)
	}

	if x < minSize || x > maxSize {
		return 0, fmt.Errorf("FindCrossover: root %g outside [%g, %g]: %w", x, minSize, maxSize, ErrNoCrossover)
	}

	return x, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
