// Package scalefit is your in-process harness for benchmarking and
// extrapolating the scaling behavior of graph-search strategies — from
// deterministic metric extraction off computational circuits to fitted
// growth curves and crossover analysis.
//
// 🚀 What is scalefit?
//
//	A small, deterministic measurement library that brings together:
//		• Problem instances: seeded random weighted graphs + a fixed fixture
//		• Solver adapters: classical Dijkstra, coined-walk and variational circuits
//		• Metric collection: construction vs. execution split, structural metrics
//		• Scaling sweeps: aligned per-size metric records across adapters
//		• Curve fitting: the fixed sqrt/log2/linear/nlogn family, scored by R²
//		• Extrapolation: projection to unmeasured sizes + crossover search
//
// ✨ Why scalefit?
//
//   - Deterministic – every stochastic path is seeded; runs reproduce exactly
//   - Honest numbers – typed failures (no crossover ≠ diverged), never fabricated roots
//   - Pure records – structured outputs at every boundary, no rendering side effects
//   - Pure Go + gonum – exact least squares via QR, no hand-rolled normal equations
//
// Everything is organized under seven subpackages, data flowing strictly
// downward:
//
//	problem/     — weighted-graph instances & the deterministic generator
//	circuit/     — gate-list circuit model (width / operations / depth)
//	solver/      — the adapter contract + classical, walk, variational adapters
//	measure/     — the metric collector (phase-split timing, uniform records)
//	scaling/     — size sweeps producing aligned per-adapter records
//	fitcurve/    — growth-model fitting and R²-ranked comparison
//	extrapolate/ — projection beyond the measured range & crossover search
//
// Quick example:
//
//	recs, err := scaling.Sweep(ctx, scaling.SizeRange{Min: 5, Max: 50, Step: 5},
//		scaling.SeededGenerator(42),
//		solver.NewClassical(), solver.NewWalk(solver.WithSeed(42)))
//	if err != nil { ... }
//	rec := recs["classical"]
//	fit, err := fitcurve.Fit(rec.FloatSizes(), rec.Series[scaling.MetricSimulationSeconds], fitcurve.NLogN)
//	if err != nil { ... }
//	x, err := extrapolate.FindCrossover(fit, otherFit, 100)
//
// See examples/ for complete, runnable walkthroughs.
package scalefit
