package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction.
var (
	// ErrBadWidth indicates a non-positive qubit count at construction.
	ErrBadWidth = errors.New("circuit: width must be ≥ 1")

	// ErrNoQubits indicates a gate applied to an empty qubit set.
	ErrNoQubits = errors.New("circuit: gate needs at least one qubit")

	// ErrQubitOutOfRange indicates a gate qubit outside 0..Width-1.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")
)

// Gate is one named operation over an ordered set of qubit indices.
type Gate struct {
	Name   string // mnemonic, e.g. "H", "CX", "ZZ", "RX"
	Qubits []int  // target qubits, each in 0..Width-1
}

// Circuit is an append-only gate list over a fixed qubit register.
// The zero value is not usable; construct via New.
type Circuit struct {
	width     int
	gates     []Gate
	depth     int   // current critical-path depth, maintained incrementally
	lastLayer []int // per qubit: index of the last layer that touched it (0 = untouched)
}

// New allocates an empty circuit of the given width.
//
// Errors: ErrBadWidth if width < 1.
// Complexity: O(width).
func New(width int) (*Circuit, error) {
	if width < 1 {
		return nil, fmt.Errorf("New: width=%d: %w", width, ErrBadWidth)
	}

	return &Circuit{
		width:     width,
		lastLayer: make([]int, width),
	}, nil
}

// Apply appends a named gate over the given qubits and updates the depth
// via greedy layering: the gate lands on the earliest layer after the last
// use of each of its qubits.
//
// Errors: ErrNoQubits for an empty qubit set, ErrQubitOutOfRange for any
// qubit outside 0..Width-1. On error the circuit is left unchanged.
// Complexity: O(len(qubits)).
func (c *Circuit) Apply(name string, qubits ...int) error {
	// 1) Validate the qubit set before touching any state.
	if len(qubits) == 0 {
		return fmt.Errorf("Apply(%s): %w", name, ErrNoQubits)
	}
	var q int
	for _, q = range qubits {
		if q < 0 || q >= c.width {
			return fmt.Errorf("Apply(%s): qubit %d of width %d: %w", name, q, c.width, ErrQubitOutOfRange)
		}
	}

	// 2) The gate's layer is one past the deepest prior use of its qubits.
	layer := 0
	for _, q = range qubits {
		if c.lastLayer[q] > layer {
			layer = c.lastLayer[q]
		}
	}
	layer++

	// 3) Commit: record the gate, advance per-qubit layers and the depth.
	owned := make([]int, len(qubits))
	copy(owned, qubits)
	c.gates = append(c.gates, Gate{Name: name, Qubits: owned})
	for _, q = range qubits {
		c.lastLayer[q] = layer
	}
	if layer > c.depth {
		c.depth = layer
	}

	return nil
}

// Width reports the qubit count of the register (resource width).
func (c *Circuit) Width() int { return c.width }

// Operations reports the total number of gates applied so far.
func (c *Circuit) Operations() int { return len(c.gates) }

// Depth reports the critical-path layer count; 0 for an empty circuit.
func (c *Circuit) Depth() int { return c.depth }

// Gates returns a deep copy of the gate list in application order; caller
// mutation never reaches the circuit.
// Complexity: O(G·k).
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	for i, g := range c.gates {
		qs := make([]int, len(g.Qubits))
		copy(qs, g.Qubits)
		out[i] = Gate{Name: g.Name, Qubits: qs}
	}

	return out
}
