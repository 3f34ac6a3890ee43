// Package fitcurve fits the fixed family of growth-rate models to a
// (size, value) scaling series and scores goodness of fit.
//
// Model set (closed, domain-specific — this is not a general fitting
// library):
//
//	Sqrt:   a·√n + b
//	Log2:   a·log2(n) + b
//	Linear: a·n + b
//	NLogN:  a·n·log2(n) + b
//
// Every model is linear in its two parameters (a, b), so the least-squares
// problem is solved exactly via QR factorization (gonum/mat) — no
// iteration, no initial guess, no internal retry. A singular or
// ill-conditioned system, or a non-finite solution, reports
// ErrFitDidNotConverge and leaves the retry decision to the caller.
//
// Goodness of fit:
//
//	R² = 1 − SSres/SStot over the supplied values. R² may be negative for
//	a pathological fit; that is a valid, reportable outcome, not an error.
//	A zero-variance series with zero residual scores R² = 1; with nonzero
//	residual it scores −Inf.
//
// Preconditions:
//
//	len(sizes) ≥ 3 (two free parameters; fewer points signal
//	ErrInsufficientData) and every size ≥ 1 (the log/sqrt bases are
//	undefined or degenerate below that; ErrBadSize).
//
// Multi-model comparison:
//
//	FitAll fits each requested model independently; a failing model is
//	reported in the failure map and excluded from ranking while the others
//	proceed. Best ranks by R², breaking exact ties by fewer parameters and
//	then by model declaration order.
package fitcurve
