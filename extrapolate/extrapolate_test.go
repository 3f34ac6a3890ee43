// Package extrapolate_test validates pure projection, repetition policies
// and the crossover outcome taxonomy.
package extrapolate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalefit/extrapolate"
	"github.com/katalvlaran/scalefit/fitcurve"
)

// ------------------------------------------------------------------------
// 1. Projection.
// ------------------------------------------------------------------------

func TestProject_Validation(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}

	_, err := extrapolate.Project(fit, nil)
	require.ErrorIs(t, err, extrapolate.ErrNoTargets)

	_, err = extrapolate.Project(fit, []float64{10, 0.5})
	require.ErrorIs(t, err, extrapolate.ErrBadTarget)
}

func TestProject_PureEvaluation(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 3, B: 1}
	targets := []float64{100, 400, 10000}

	res, err := extrapolate.Project(fit, targets)
	require.NoError(t, err)
	require.Equal(t, fitcurve.Sqrt, res.Model)
	require.Equal(t, targets, res.Sizes)
	require.InDeltaSlice(t, []float64{31, 61, 301}, res.Values, 1e-9)
}

func TestProject_Idempotent(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.NLogN, A: 0.5, B: 2}
	targets := []float64{64, 128, 256}

	first, err := extrapolate.Project(fit, targets)
	require.NoError(t, err)
	second, err := extrapolate.Project(fit, targets)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestProject_DoesNotAliasTargets(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}
	targets := []float64{10, 20}

	res, err := extrapolate.Project(fit, targets)
	require.NoError(t, err)

	targets[0] = 999
	require.Equal(t, 10.0, res.Sizes[0], "Result must own its size sequence")
}

// ------------------------------------------------------------------------
// 2. Repetition policies.
// ------------------------------------------------------------------------

func TestProject_RepetitionPolicies(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}
	targets := []float64{100}

	plain, err := extrapolate.Project(fit, targets)
	require.NoError(t, err)
	require.InDelta(t, 100.0, plain.Values[0], 1e-9)

	tripled, err := extrapolate.Project(fit, targets,
		extrapolate.WithRepetitionPolicy(extrapolate.FixedRepetitions(3)))
	require.NoError(t, err)
	require.InDelta(t, 300.0, tripled.Values[0], 1e-9)

	// The source heuristic: 1/√n success ⇒ √n expected repetitions.
	charged, err := extrapolate.Project(fit, targets,
		extrapolate.WithRepetitionPolicy(extrapolate.InverseSqrtSuccess))
	require.NoError(t, err)
	require.InDelta(t, 1000.0, charged.Values[0], 1e-9)
}

// ------------------------------------------------------------------------
// 3. Crossover taxonomy.
// ------------------------------------------------------------------------

func TestFindCrossover_SqrtVsLinear(t *testing.T) {
	// 10·√n meets n exactly at n = 100.
	quantum := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 10, B: 0}
	classical := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}

	x, err := extrapolate.FindCrossover(quantum, classical, 50)
	require.NoError(t, err)
	require.InDelta(t, 100.0, x, 1e-6)
}

func TestFindCrossover_OrderInsensitive(t *testing.T) {
	a := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 10, B: 0}
	b := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}

	x1, err := extrapolate.FindCrossover(a, b, 50)
	require.NoError(t, err)
	x2, err := extrapolate.FindCrossover(b, a, 50)
	require.NoError(t, err)
	require.InDelta(t, x1, x2, 1e-6)
}

func TestFindCrossover_IdenticalFits(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Log2, A: 2, B: 1}

	_, err := extrapolate.FindCrossover(fit, fit, 100)
	require.ErrorIs(t, err, extrapolate.ErrNoCrossover)
	// Identical curves are a normal no-crossover outcome, not a failure.
	require.NotErrorIs(t, err, extrapolate.ErrCrossoverDiverged)
}

func TestFindCrossover_ParallelFits(t *testing.T) {
	a := fitcurve.FitResult{Model: fitcurve.Linear, A: 2, B: 0}
	b := fitcurve.FitResult{Model: fitcurve.Linear, A: 2, B: 5}

	_, err := extrapolate.FindCrossover(a, b, 100)
	require.ErrorIs(t, err, extrapolate.ErrNoCrossover)
	require.NotErrorIs(t, err, extrapolate.ErrCrossoverDiverged)
}

func TestFindCrossover_OutOfRangeRoot(t *testing.T) {
	// Two lines meeting at n = 2·10⁶, far past 10000× the seed of 10:
	// the root is real but implausible for locally valid fits.
	a := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 2_000_000}
	b := fitcurve.FitResult{Model: fitcurve.Linear, A: 2, B: 0}

	_, err := extrapolate.FindCrossover(a, b, 10)
	require.ErrorIs(t, err, extrapolate.ErrNoCrossover)
	require.NotErrorIs(t, err, extrapolate.ErrCrossoverDiverged)

	// Widening the accepted domain turns the same root into a result.
	x, err := extrapolate.FindCrossover(a, b, 10, extrapolate.WithMaxSize(1e7))
	require.NoError(t, err)
	require.InDelta(t, 2_000_000.0, x, 1e-3)
}

func TestFindCrossover_DivergenceIsDistinguishable(t *testing.T) {
	// These log curves intersect only at x = 0.5, below the model domain:
	// the iteration keeps clamping at the domain edge and never converges.
	a := fitcurve.FitResult{Model: fitcurve.Log2, A: 1, B: 0}
	b := fitcurve.FitResult{Model: fitcurve.Log2, A: 2, B: 1}

	_, err := extrapolate.FindCrossover(a, b, 4)
	require.ErrorIs(t, err, extrapolate.ErrCrossoverDiverged)
	// And the divergence still classifies as "no crossover" for callers
	// that only branch on the coarse outcome.
	require.ErrorIs(t, err, extrapolate.ErrNoCrossover)
}

// TestFindCrossover_OutcomeBranching drives the two no-crossover variants
// through plain errors.Is, the way a sweep caller would branch on them.
func TestFindCrossover_OutcomeBranching(t *testing.T) {
	fit := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}
	_, identErr := extrapolate.FindCrossover(fit, fit, 100)

	a := fitcurve.FitResult{Model: fitcurve.Log2, A: 1, B: 0}
	b := fitcurve.FitResult{Model: fitcurve.Log2, A: 2, B: 1}
	_, divErr := extrapolate.FindCrossover(a, b, 4)

	// Coarse branch: both variants classify as "no crossover".
	for _, err := range []error{identErr, divErr} {
		if !errors.Is(err, extrapolate.ErrNoCrossover) {
			t.Fatalf("errors.Is(%v, ErrNoCrossover) = false", err)
		}
	}
	// Fine branch: only the failed root search is a divergence.
	if errors.Is(identErr, extrapolate.ErrCrossoverDiverged) {
		t.Fatalf("identical fits classified as diverged: %v", identErr)
	}
	if !errors.Is(divErr, extrapolate.ErrCrossoverDiverged) {
		t.Fatalf("errors.Is(%v, ErrCrossoverDiverged) = false", divErr)
	}
}

func TestFindCrossover_BadSeed(t *testing.T) {
	a := fitcurve.FitResult{Model: fitcurve.Sqrt, A: 10, B: 0}
	b := fitcurve.FitResult{Model: fitcurve.Linear, A: 1, B: 0}

	_, err := extrapolate.FindCrossover(a, b, 0)
	require.ErrorIs(t, err, extrapolate.ErrBadSeed)
}
