package signalx

import (
	"slices"

	"github.com/google/uuid"
)

// Node is a boolean signal vertex. Inputs drive it; outputs are driven by it.
//
// A Node is not safe for concurrent use. Wrap the graph in a realtime.Runtime
// when several goroutines need to drive it.
type Node struct {
	id      string
	name    string
	state   bool
	inputs  []*Node
	outputs []*Node
	mode    Mode
	probe   Probe
}

// NewNode creates a node in the false state with no edges.
func NewNode(opts ...Option) *Node {
	n := &Node{id: uuid.NewString()}
	for _, opt := range opts {
		opt(n)
	}
	if n.name == "" {
		n.name = n.id
	}
	return n
}

func (n *Node) ID() string     { return n.id }
func (n *Node) Name() string   { return n.name }
func (n *Node) String() string { return n.name }

// Mode reports the propagation mode for cascades started at n.
func (n *Node) Mode() Mode { return n.mode }

// State returns the current state.
func (n *Node) State() bool { return n.state }

// SetState changes the state of n and, if it differs from the current one,
// pushes it to every output before returning. Returns n.
func (n *Node) SetState(state bool) *Node {
	n.cascade(state)
	return n
}

// Inputs returns a copy of the nodes driving n, in the order they were added.
func (n *Node) Inputs() []*Node { return slices.Clone(n.inputs) }

// Outputs returns a copy of the nodes driven by n, in the order they were added.
func (n *Node) Outputs() []*Node { return slices.Clone(n.outputs) }

// HasInput reports whether src drives n.
func (n *Node) HasInput(src *Node) bool { return slices.Contains(n.inputs, src) }

// HasOutput reports whether n drives dst.
func (n *Node) HasOutput(dst *Node) bool { return slices.Contains(n.outputs, dst) }

// AddInput wires src as a driver of n. Adding an existing input is a no-op.
// It panics with ErrNilNode if src is nil; use Connect to get an error instead.
func (n *Node) AddInput(src *Node) *Node {
	if err := Connect(src, n); err != nil {
		panic(err)
	}
	return n
}

// AddOutput wires dst as driven by n. Adding an existing output is a no-op.
// It panics with ErrNilNode if dst is nil; use Connect to get an error instead.
func (n *Node) AddOutput(dst *Node) *Node {
	if err := Connect(n, dst); err != nil {
		panic(err)
	}
	return n
}

// Connect records the edge src -> dst in both endpoints. The edge is
// registered at most once; connecting an existing pair does nothing.
func Connect(src, dst *Node) error {
	if src == nil || dst == nil {
		return ErrNilNode
	}
	// inputs and outputs are always updated together, so one side is enough.
	if slices.Contains(dst.inputs, src) {
		return nil
	}
	dst.inputs = append(dst.inputs, src)
	src.outputs = append(src.outputs, dst)
	return nil
}
