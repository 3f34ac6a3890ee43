// Package solver declares the adapter contract, outcome payloads, shared
// configuration options and sentinel errors.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scalefit/problem"
)

// Sentinel errors shared by all adapters.
var (
	// ErrNilInstance indicates a nil *problem.Instance.
	ErrNilInstance = errors.New("solver: instance is nil")

	// ErrInvalidInstance indicates an instance with fewer than 2 nodes;
	// a search problem needs distinct source and target.
	ErrInvalidInstance = errors.New("solver: instance needs at least 2 nodes")

	// ErrBadEndpoint indicates a source or target outside 0..N-1.
	ErrBadEndpoint = errors.New("solver: endpoint out of range")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("solver: no path between endpoints")

	// ErrBadArtifact indicates Execute received an artifact that was not
	// produced by this adapter's Prepare.
	ErrBadArtifact = errors.New("solver: artifact from a different adapter")
)

// Artifact is the constructed computational structure of one Prepare call.
// All three metrics are static: reading them never executes the solver.
type Artifact interface {
	// Depth is the sequential-step count of the structure (≥ 0).
	Depth() int
	// Operations is the total operation count of the structure (≥ 0).
	Operations() int
	// Width is the parallel resource count, e.g. qubits (≥ 1).
	Width() int
}

// Outcome is the solver-specific result payload of one Execute call.
type Outcome interface {
	// Kind names the payload family: "path" or "samples".
	Kind() string
}

// PathOutcome is the classical payload: an explicit shortest path.
type PathOutcome struct {
	Path   []int // node sequence source..target
	Length int64 // total path weight
}

// Kind reports "path".
func (PathOutcome) Kind() string { return "path" }

// SampleOutcome is the circuit payload: an outcome-frequency table over
// measured bitstrings.
type SampleOutcome struct {
	Counts map[string]int // bitstring → observation count
	Shots  int            // total measurements taken
}

// Kind reports "samples".
func (SampleOutcome) Kind() string { return "samples" }

// Adapter is the single capability the metric collector drives.
// Implementations must not mutate the instance and must be deterministic
// for a fixed construction-time seed.
type Adapter interface {
	// Name identifies the adapter in sweep records, e.g. "classical".
	Name() string
	// Prepare builds the computational structure for inst.
	Prepare(inst *problem.Instance) (Artifact, error)
	// Execute runs or emulates the prepared structure.
	Execute(art Artifact) (Outcome, error)
}

// Defaults for adapter configuration; override via functional options.
const (
	// DefaultSeed seeds each adapter's emulation RNG.
	DefaultSeed int64 = 1

	// DefaultShots is the measurement count per circuit execution.
	DefaultShots = 1024

	// DefaultLayers is the cost/mixer layer count of Variational.
	DefaultLayers = 2

	// DefaultQubitCap bounds the Variational register; instances with more
	// nodes are deterministically downscaled (see VariationalCircuit.Scaled).
	DefaultQubitCap = 16
)

// config is the resolved adapter configuration.
type config struct {
	seed     int64
	shots    int
	steps    int // walk steps; 0 ⇒ ⌈√n⌉ at Prepare time
	layers   int
	qubitCap int
	source   int
	target   int // -1 ⇒ N-1 at Prepare time
}

// defaultConfig returns the baseline configuration shared by all adapters.
func defaultConfig() config {
	return config{
		seed:     DefaultSeed,
		shots:    DefaultShots,
		layers:   DefaultLayers,
		qubitCap: DefaultQubitCap,
		source:   0,
		target:   -1,
	}
}

// Option customizes an adapter at construction. Options validate eagerly
// and panic on programmer error (module-wide option policy).
type Option func(*config)

// WithSeed fixes the emulation RNG seed; equal seeds yield equal outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithShots sets the measurement count per execution. Panics if shots < 1.
func WithShots(shots int) Option {
	if shots < 1 {
		panic(fmt.Sprintf("WithShots: shots must be ≥ 1, got %d", shots))
	}

	return func(c *config) { c.shots = shots }
}

// WithSteps fixes the walk step count; 0 restores the ⌈√n⌉ default.
// Panics if steps < 0.
func WithSteps(steps int) Option {
	if steps < 0 {
		panic(fmt.Sprintf("WithSteps: steps must be ≥ 0, got %d", steps))
	}

	return func(c *config) { c.steps = steps }
}

// WithLayers sets the Variational layer count. Panics if layers < 1.
func WithLayers(layers int) Option {
	if layers < 1 {
		panic(fmt.Sprintf("WithLayers: layers must be ≥ 1, got %d", layers))
	}

	return func(c *config) { c.layers = layers }
}

// WithQubitCap bounds the Variational register width. Panics if limit < 2.
func WithQubitCap(limit int) Option {
	if limit < 2 {
		panic(fmt.Sprintf("WithQubitCap: limit must be ≥ 2, got %d", limit))
	}

	return func(c *config) { c.qubitCap = limit }
}

// WithEndpoints fixes the (source, target) pair instead of the default
// (0, N-1). Panics if source < 0 or target < 0; range checks against the
// concrete instance happen at Prepare time (ErrBadEndpoint).
func WithEndpoints(source, target int) Option {
	if source < 0 || target < 0 {
		panic(fmt.Sprintf("WithEndpoints: endpoints must be ≥ 0, got (%d,%d)", source, target))
	}

	return func(c *config) {
		c.source = source
		c.target = target
	}
}

// validateInstance applies the shared Prepare preconditions and resolves
// the effective (source, target) pair for inst.
func validateInstance(inst *problem.Instance, cfg config) (src, dst int, err error) {
	if inst == nil {
		return 0, 0, ErrNilInstance
	}
	if inst.N() < 2 {
		return 0, 0, fmt.Errorf("n=%d: %w", inst.N(), ErrInvalidInstance)
	}

	src, dst = cfg.source, cfg.target
	if dst < 0 {
		dst = inst.N() - 1
	}
	if src >= inst.N() || dst >= inst.N() {
		return 0, 0, fmt.Errorf("source=%d target=%d n=%d: %w", src, dst, inst.N(), ErrBadEndpoint)
	}

	return src, dst, nil
}

// ceilLog2 returns ⌈log2 n⌉ with a floor of 1, the register width needed
// to address n distinct states.
func ceilLog2(n int) int {
	bits := 1
	for span := 2; span < n; span <<= 1 {
		bits++
	}

	return bits
}
