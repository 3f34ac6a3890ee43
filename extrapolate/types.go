// Package extrapolate declares the projection result shape, the
// repetition-policy hook and the option set shared by Project and
// FindCrossover.
package extrapolate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/scalefit/fitcurve"
)

// Sentinel errors and result variants.
var (
	// ErrNoTargets indicates an empty target-size list.
	ErrNoTargets = errors.New("extrapolate: no target sizes")

	// ErrBadTarget indicates a target size below 1.
	ErrBadTarget = errors.New("extrapolate: target sizes must be ≥ 1")

	// ErrBadSeed indicates a crossover search seed below 1.
	ErrBadSeed = errors.New("extrapolate: search seed must be ≥ 1")

	// ErrNoCrossover reports that no in-range intersection exists.
	// This is a legitimate result variant, not a failure.
	ErrNoCrossover = errors.New("extrapolate: no crossover in range")

	// ErrCrossoverDiverged reports that the root-finder did not converge.
	// It wraps ErrNoCrossover: errors.Is(err, ErrNoCrossover) holds, while
	// errors.Is(err, ErrCrossoverDiverged) distinguishes the failure mode.
	ErrCrossoverDiverged = fmt.Errorf("root search did not converge: %w", ErrNoCrossover)
)

// Defaults for the crossover search; override via functional options.
const (
	// DefaultMaxSizeFactor bounds accepted roots at factor·seed when
	// WithMaxSize is not supplied: the fitted models are only locally
	// valid, and a root beyond 10000× the measured scale is implausible.
	DefaultMaxSizeFactor = 10_000.0

	// DefaultTolerance is the Newton convergence tolerance (relative step).
	DefaultTolerance = 1e-9

	// DefaultMaxIterations bounds the Newton loop.
	DefaultMaxIterations = 64

	// minSize is the lower edge of the valid model domain.
	minSize = 1.0

	// paramEps is the parameter-equality threshold used to detect two
	// effectively identical fitted curves (no finite distinct crossing).
	paramEps = 1e-12
)

// Result pairs target sizes with projected metric values for one fitted
// model. Derived on demand; never mutated.
type Result struct {
	Model  fitcurve.Model
	Sizes  []float64 // target sizes, as supplied
	Values []float64 // projected values, index-aligned with Sizes
}

// RepetitionPolicy scales a projected value by the expected number of
// repetitions at a given size. Policies are estimation heuristics the
// caller opts into; the projection itself never assumes one.
type RepetitionPolicy func(size float64) float64

// NoRepetition charges every size a single run (multiplier 1).
func NoRepetition(float64) float64 { return 1 }

// FixedRepetitions charges every size a constant k runs. Panics if k < 1.
func FixedRepetitions(k int) RepetitionPolicy {
	if k < 1 {
		panic(fmt.Sprintf("FixedRepetitions: k must be ≥ 1, got %d", k))
	}

	return func(float64) float64 { return float64(k) }
}

// InverseSqrtSuccess models a per-run success probability decaying as
// 1/√n, charging √n expected repetitions. This preserves the source
// material's heuristic; it carries no cited derivation, so treat it as an
// estimate and swap it out when a better model of the solver exists.
func InverseSqrtSuccess(size float64) float64 { return math.Sqrt(size) }

// Options configures Project and FindCrossover.
//
// MaxSize       — upper edge of the accepted crossover domain;
//                 0 means "derive as DefaultMaxSizeFactor × seed".
// Tolerance     — Newton convergence tolerance (relative step size).
// MaxIterations — Newton iteration cap.
// Repetition    — per-size repetition multiplier applied by Project.
type Options struct {
	MaxSize       float64
	Tolerance     float64
	MaxIterations int
	Repetition    RepetitionPolicy
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		MaxSize:       0,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Repetition:    NoRepetition,
	}
}

// Option is a functional option for Project and FindCrossover. Options
// validate eagerly and panic on programmer error (module-wide policy).
type Option func(*Options)

// WithMaxSize fixes the upper edge of the accepted crossover domain.
// Panics if max ≤ 1.
func WithMaxSize(max float64) Option {
	if max <= minSize {
		panic(fmt.Sprintf("WithMaxSize: max must be > 1, got %g", max))
	}

	return func(o *Options) { o.MaxSize = max }
}

// WithTolerance sets the Newton convergence tolerance. Panics if tol ≤ 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(fmt.Sprintf("WithTolerance: tol must be > 0, got %g", tol))
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps the Newton loop. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("WithMaxIterations: n must be ≥ 1, got %d", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithRepetitionPolicy installs the repetition multiplier Project applies.
// Panics on a nil policy; use NoRepetition to restore the default.
func WithRepetitionPolicy(p RepetitionPolicy) Option {
	if p == nil {
		panic("WithRepetitionPolicy: policy must be non-nil")
	}

	return func(o *Options) { o.Repetition = p }
}
