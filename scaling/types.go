// Package scaling declares the size-range contract, the Record shape
// consumed by the fitting and extrapolation layers, and the sweep errors.
package scaling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scalefit/measure"
	"github.com/katalvlaran/scalefit/problem"
)

// Sentinel errors for sweep input validation.
var (
	// ErrInvalidRange indicates a malformed sweep size sequence:
	// non-positive min/step, max < min, or a non-increasing explicit list.
	ErrInvalidRange = errors.New("scaling: invalid size range")

	// ErrNilGenerator indicates a nil instance generator.
	ErrNilGenerator = errors.New("scaling: generator is nil")

	// ErrNoAdapters indicates a sweep with no adapters to measure.
	ErrNoAdapters = errors.New("scaling: at least one adapter required")
)

// Metric names of the series every Record carries. These names are the
// stable boundary contract for renderers and fit callers.
const (
	MetricCreationSeconds   = "creation_seconds"
	MetricSimulationSeconds = "simulation_seconds"
	MetricStructuralDepth   = "structural_depth"
	MetricTotalOperations   = "total_operations"
	MetricResourceWidth     = "resource_width"
)

// MetricNames lists every series name in declaration order.
func MetricNames() []string {
	return []string{
		MetricCreationSeconds,
		MetricSimulationSeconds,
		MetricStructuralDepth,
		MetricTotalOperations,
		MetricResourceWidth,
	}
}

// Generator produces one fresh instance of the requested size. Sweeps call
// it exactly once per size; determinism is the generator's responsibility.
type Generator func(n int) (*problem.Instance, error)

// SeededGenerator adapts problem.Generate into a sweep Generator with a
// per-size seed derived from base, so each size gets an independent but
// reproducible instance.
func SeededGenerator(base int64) Generator {
	return func(n int) (*problem.Instance, error) {
		return problem.Generate(n, problem.WithSeed(base+int64(n)))
	}
}

// SizeRange is the construction-time contract for a sweep: caller-supplied
// minimum, maximum and fixed positive step.
type SizeRange struct {
	Min, Max, Step int
}

// Sizes expands the range into the strictly increasing size sequence
// min, min+step, ... ≤ max.
//
// Errors: ErrInvalidRange if min < 1, step < 1 or max < min.
// Complexity: O((max-min)/step).
func (r SizeRange) Sizes() ([]int, error) {
	if r.Min < 1 || r.Step < 1 || r.Max < r.Min {
		return nil, fmt.Errorf("Sizes: min=%d max=%d step=%d: %w", r.Min, r.Max, r.Step, ErrInvalidRange)
	}

	sizes := make([]int, 0, (r.Max-r.Min)/r.Step+1)
	for n := r.Min; n <= r.Max; n += r.Step {
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// ValidateSizes checks an explicit size sequence: non-empty, every size
// ≥ 1, strictly increasing. Duplicates are rejected, not deduplicated.
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("ValidateSizes: empty sequence: %w", ErrInvalidRange)
	}
	for i, n := range sizes {
		if n < 1 {
			return fmt.Errorf("ValidateSizes: sizes[%d]=%d: %w", i, n, ErrInvalidRange)
		}
		if i > 0 && n <= sizes[i-1] {
			return fmt.Errorf("ValidateSizes: sizes[%d]=%d after %d: %w", i, n, sizes[i-1], ErrInvalidRange)
		}
	}

	return nil
}

// Record is one adapter's sweep output: the swept sizes plus one aligned
// float64 series per metric name. Invariant: len(Series[k]) == len(Sizes)
// for every k, and Series[k][i] belongs to Sizes[i].
type Record struct {
	Adapter string
	Sizes   []int
	Series  map[string][]float64
}

// newRecord allocates an empty record with every metric series prepared.
func newRecord(adapter string, capacity int) *Record {
	series := make(map[string][]float64, len(MetricNames()))
	for _, name := range MetricNames() {
		series[name] = make([]float64, 0, capacity)
	}

	return &Record{
		Adapter: adapter,
		Sizes:   make([]int, 0, capacity),
		Series:  series,
	}
}

// append adds one measured size to the record; the single mutation point,
// keeping the alignment invariant by construction.
func (rec *Record) append(size int, m measure.Metrics) {
	rec.Sizes = append(rec.Sizes, size)
	rec.Series[MetricCreationSeconds] = append(rec.Series[MetricCreationSeconds], m.CreationSeconds)
	rec.Series[MetricSimulationSeconds] = append(rec.Series[MetricSimulationSeconds], m.SimulationSeconds)
	rec.Series[MetricStructuralDepth] = append(rec.Series[MetricStructuralDepth], float64(m.StructuralDepth))
	rec.Series[MetricTotalOperations] = append(rec.Series[MetricTotalOperations], float64(m.TotalOperations))
	rec.Series[MetricResourceWidth] = append(rec.Series[MetricResourceWidth], float64(m.ResourceWidth))
}

// FloatSizes returns the size sequence as float64, the shape the fitting
// layer consumes.
func (rec *Record) FloatSizes() []float64 {
	out := make([]float64, len(rec.Sizes))
	for i, n := range rec.Sizes {
		out[i] = float64(n)
	}

	return out
}
