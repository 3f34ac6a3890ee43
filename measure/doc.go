// Package measure is the metric collector: it drives one solver adapter
// against one problem instance and normalizes the result into the common
// Metrics record every scaling study is built from.
//
// Phase split:
//
//	Measure times the adapter's two phases independently with wall-clock
//	timestamps — construction (Prepare) and execution/simulation (Execute).
//	The two numbers are always reported separately, never folded into one:
//	downstream analysis needs the split to attribute cost. A solver with a
//	trivial construction phase (the classical one) reports ≈0 construction
//	seconds, not a missing field — the record shape is uniform across
//	solver kinds.
//
// Metrics records are created once per (adapter, instance) pair and never
// mutated afterwards; Measure returns them by value.
//
// Timing caveat: single-run wall-clock figures, by design. The harness is
// not a statistical benchmark; no repetition or variance estimation here.
package measure
