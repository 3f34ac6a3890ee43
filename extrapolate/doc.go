// Package extrapolate projects fitted growth models to sizes beyond the
// measured range and solves for the crossover point of two fitted curves.
//
// Projection:
//
//	Project is pure evaluation of a FitResult at new sizes — no fitting
//	occurs, and identical inputs always yield identical outputs. An
//	optional RepetitionPolicy multiplies each projected value by an
//	expected-repetition factor (e.g. to charge a probabilistic solver for
//	its re-runs). The bundled InverseSqrtSuccess policy preserves the
//	source material's success-probability heuristic as a clearly labeled,
//	swappable estimate — it has no cited derivation and is deliberately
//	not baked into the projection arithmetic.
//
// Crossover:
//
//	FindCrossover solves modelA(x) − modelB(x) = 0 with a damped Newton
//	iteration seeded at the caller's search seed, using the closed-form
//	basis derivatives. Newton converges locally, so the seed choice
//	materially affects which root (if any) is found. A root is accepted
//	only inside the sane domain [1, MaxSize] (default 10000× the seed):
//	the fitted models are only locally valid, and an implausible root is
//	reported as no crossover, never as a fabricated number.
//
// Outcome taxonomy:
//
//	ErrNoCrossover       — no in-range intersection (a normal result
//	                       variant, not a failure).
//	ErrCrossoverDiverged — the root-finder failed to converge; wraps
//	                       ErrNoCrossover so errors.Is(err, ErrNoCrossover)
//	                       holds for both, while the two outcomes stay
//	                       distinguishable.
package extrapolate
