// Package circuit provides a minimal gate-list model of a computational
// circuit, sufficient to read the three static structural metrics every
// scaling study records: resource width, total operation count, and
// sequential depth.
//
// Model:
//
//	A Circuit is an ordered list of Gates over a fixed number of qubits
//	(Width). Appending a gate never reorders earlier gates; the structural
//	metrics are therefore obtainable at any time without executing anything.
//
// Depth:
//
//	Depth is computed by greedy layering: each gate is placed on the
//	earliest layer strictly after the last layer that touched any of its
//	qubits. Gates on disjoint qubit sets share a layer. This is the usual
//	"critical path" depth of a circuit diagram and is maintained
//	incrementally, so Depth() is O(1).
//
// Errors (sentinel):
//
//	ErrBadWidth        — width < 1 at construction.
//	ErrNoQubits        — gate applied to zero qubits.
//	ErrQubitOutOfRange — gate touches a qubit outside 0..Width-1.
//
// Complexity:
//
//	Apply: O(k) for a k-qubit gate. Width/Operations/Depth: O(1).
package circuit
