// Package fitcurve declares the model set, the FitResult record and the
// sentinel errors of the fitting layer.
package fitcurve

import (
	"errors"
	"math"
)

// Sentinel errors for fitting.
var (
	// ErrInsufficientData indicates fewer than MinPoints (size, value)
	// pairs, or mismatched sequence lengths.
	ErrInsufficientData = errors.New("fitcurve: need at least 3 aligned points")

	// ErrBadSize indicates a size below 1, where the log/sqrt bases are
	// undefined or degenerate.
	ErrBadSize = errors.New("fitcurve: sizes must be ≥ 1")

	// ErrUnknownModel indicates a model outside the fixed set.
	ErrUnknownModel = errors.New("fitcurve: unknown model")

	// ErrFitDidNotConverge indicates a numerically unsolvable system
	// (singular/ill-conditioned design matrix or non-finite parameters).
	ErrFitDidNotConverge = errors.New("fitcurve: fit did not converge")

	// ErrNoFits indicates that Best was given no successful fits to rank.
	ErrNoFits = errors.New("fitcurve: no successful fits to rank")
)

// MinPoints is the minimum series length a two-parameter fit accepts.
const MinPoints = 3

// zeroResidual is the round-off scale below which a residual sum counts
// as an exact fit when the observations carry no variance at all.
const zeroResidual = 1e-18

// paramCount is the free-parameter count of every model in the fixed set.
// Kept per-model in ParamCount so a future model with a different arity
// slots into the Best tie-break unchanged.
const paramCount = 2

// Model names one growth-rate hypothesis from the fixed set.
type Model string

// The fixed model set, in declaration order (the order Models reports and
// the final Best tie-break uses).
const (
	Sqrt   Model = "sqrt"   // a·√n + b
	Log2   Model = "log2"   // a·log2(n) + b
	Linear Model = "linear" // a·n + b
	NLogN  Model = "nlogn"  // a·n·log2(n) + b
)

// Models lists the fixed model set in declaration order.
func Models() []Model {
	return []Model{Sqrt, Log2, Linear, NLogN}
}

// Valid reports whether m belongs to the fixed set.
func (m Model) Valid() bool {
	switch m {
	case Sqrt, Log2, Linear, NLogN:
		return true
	default:
		return false
	}
}

// rank reports m's position in the declaration order; used only for the
// final tie-break in Best. Unknown models sort last.
func (m Model) rank() int {
	for i, known := range Models() {
		if m == known {
			return i
		}
	}

	return len(Models())
}

// ParamCount reports the free-parameter count of the model (2 for every
// model in the current set).
func (m Model) ParamCount() int { return paramCount }

// Basis evaluates the model's growth basis f with model(n) = a·f(n) + b.
// Callers must ensure x ≥ 1; below that the bases lose meaning.
func (m Model) Basis(x float64) float64 {
	switch m {
	case Sqrt:
		return math.Sqrt(x)
	case Log2:
		return math.Log2(x)
	case Linear:
		return x
	case NLogN:
		return x * math.Log2(x)
	default:
		return math.NaN()
	}
}

// Slope evaluates df/dx of the growth basis, used by the crossover
// root-finder's Newton iteration. Callers must ensure x ≥ 1.
func (m Model) Slope(x float64) float64 {
	switch m {
	case Sqrt:
		return 1 / (2 * math.Sqrt(x))
	case Log2:
		return 1 / (x * math.Ln2)
	case Linear:
		return 1
	case NLogN:
		return math.Log2(x) + 1/math.Ln2
	default:
		return math.NaN()
	}
}

// FitResult is one fitted model: parameters and goodness of fit. Derived
// from a scaling record and never mutated; refit when the record changes.
type FitResult struct {
	Model Model
	A, B  float64 // fitted parameters of a·f(n) + b
	R2    float64 // coefficient of determination in (-∞, 1]
}

// Eval evaluates the fitted model at size x.
func (f FitResult) Eval(x float64) float64 {
	return f.A*f.Model.Basis(x) + f.B
}

// Slope evaluates the fitted model's derivative at size x.
func (f FitResult) Slope(x float64) float64 {
	return f.A * f.Model.Slope(x)
}
