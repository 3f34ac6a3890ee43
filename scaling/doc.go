// Package scaling runs the size sweep: for every instance size in a range
// it generates one fresh problem instance, measures every adapter against
// that same instance, and assembles per-adapter records of aligned metric
// series.
//
// Load-bearing invariant:
//
//	At a given size, every adapter is measured against the *same* instance.
//	Regenerating or reusing instances inconsistently across adapters would
//	invalidate every downstream comparison. The only sanctioned deviation
//	is an adapter that deterministically derives a complexity-bounded
//	analogue internally (see solver.VariationalCircuit.Scaled) — explicit
//	and observable, never silent.
//
// Record alignment:
//
//	Every Record of one sweep shares the identical Sizes sequence, and
//	every metric series has exactly one value per size, index-aligned.
//	Iterations only ever append, so a sweep aborted at size k still leaves
//	valid, truncated records for sizes < k in the caller's hands.
//
// Cancellation:
//
//	Sweep honors ctx between iterations (never mid-adapter): a single
//	size's run is assumed short relative to the whole sweep.
//
// Errors (sentinel):
//
//	ErrInvalidRange — malformed size range (non-positive bounds/step or a
//	                  non-increasing sequence).
//	ErrNilGenerator — no instance generator supplied.
//	ErrNoAdapters   — nothing to measure.
//
// Generator and adapter failures abort the current sweep and are wrapped
// with (size, adapter) context so the caller can resume or skip.
package scaling
