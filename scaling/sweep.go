package scaling

import (
	"context"
	"fmt"

	"github.com/katalvlaran/scalefit/measure"
	"github.com/katalvlaran/scalefit/solver"
)

// Sweep measures every adapter across the size range and returns one
// aligned Record per adapter, keyed by adapter name.
//
// Per size: exactly one instance from gen, then every adapter measured
// against that same instance. Records only ever grow by appending, so on
// error the caller still holds consistent truncated records for the sizes
// completed so far (returned alongside the error).
//
// Cancellation: ctx is consulted between iterations only; a mid-adapter
// run is never interrupted.
//
// Errors: ErrInvalidRange, ErrNilGenerator, ErrNoAdapters up front;
// generator/adapter failures abort the sweep wrapped with (size, adapter)
// context.
//
// Complexity: Σ over sizes of (generation + per-adapter Prepare/Execute).
func Sweep(ctx context.Context, r SizeRange, gen Generator, adapters ...solver.Adapter) (map[string]*Record, error) {
	sizes, err := r.Sizes()
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}

	return SweepSizes(ctx, sizes, gen, adapters...)
}

// SweepSizes is Sweep over an explicit, strictly increasing size sequence.
// Partial results are returned together with the error on a mid-sweep
// failure; the records cover every fully completed size.
func SweepSizes(ctx context.Context, sizes []int, gen Generator, adapters ...solver.Adapter) (map[string]*Record, error) {
	// 1) Up-front contract checks, before any measuring starts.
	if err := ValidateSizes(sizes); err != nil {
		return nil, fmt.Errorf("SweepSizes: %w", err)
	}
	if gen == nil {
		return nil, fmt.Errorf("SweepSizes: %w", ErrNilGenerator)
	}
	if len(adapters) == 0 {
		return nil, fmt.Errorf("SweepSizes: %w", ErrNoAdapters)
	}
	for i, a := range adapters {
		if a == nil {
			return nil, fmt.Errorf("SweepSizes: adapter[%d] is nil: %w", i, ErrNoAdapters)
		}
	}

	// 2) One record per adapter, all sharing the same (growing) size axis.
	records := make(map[string]*Record, len(adapters))
	for _, a := range adapters {
		records[a.Name()] = newRecord(a.Name(), len(sizes))
	}

	// 3) Batch loop: size by size, to completion, append-only.
	var (
		m       measure.Metrics
		staged  []measure.Metrics
		a       solver.Adapter
		size, i int
		err     error
	)
	staged = make([]measure.Metrics, len(adapters))
	for _, size = range sizes {
		// Cancellation boundary: between sizes, never mid-adapter.
		if err = ctx.Err(); err != nil {
			return records, fmt.Errorf("SweepSizes: size %d: %w", size, err)
		}

		// One fresh instance per size, shared by every adapter below.
		inst, genErr := gen(size)
		if genErr != nil {
			return records, fmt.Errorf("SweepSizes: size %d: generate: %w", size, genErr)
		}

		// Measure all adapters first, then commit: a failing adapter must
		// not leave this size half-appended across records.
		for i, a = range adapters {
			if m, err = measure.Measure(a, inst); err != nil {
				return records, fmt.Errorf("SweepSizes: size %d: adapter %s: %w", size, a.Name(), err)
			}
			staged[i] = m
		}
		for i, a = range adapters {
			records[a.Name()].append(size, staged[i])
		}
	}

	return records, nil
}
