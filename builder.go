package signalx

import (
	"errors"
	"fmt"
)

// CircuitBuilder provides a fluent API for wiring circuits by node name
// instead of holding on to *Node values.
type CircuitBuilder struct {
	id    string
	opts  []Option
	decls map[string]*nodeDecl
	order []*nodeDecl
	edges []edge
}

// NodeBuilder provides fluent methods for configuring a single node.
type NodeBuilder struct {
	b    *CircuitBuilder
	decl *nodeDecl
}

type nodeDecl struct {
	name    string
	initial bool
	opts    []Option
}

type edge struct {
	from, to string
}

// NewCircuitBuilder creates a builder for a circuit. opts are applied to every
// node before the node's own options.
func NewCircuitBuilder(id string, opts ...Option) *CircuitBuilder {
	return &CircuitBuilder{
		id:    id,
		opts:  opts,
		decls: make(map[string]*nodeDecl),
	}
}

// Node creates or retrieves a node declaration by name.
func (b *CircuitBuilder) Node(name string) *NodeBuilder {
	return &NodeBuilder{b: b, decl: b.declare(name)}
}

// declare returns the existing declaration for name, or records a new one.
// Declaration order is the order nodes appear in the built circuit.
func (b *CircuitBuilder) declare(name string) *nodeDecl {
	if d, exists := b.decls[name]; exists {
		return d
	}
	d := &nodeDecl{name: name}
	b.decls[name] = d
	b.order = append(b.order, d)
	return d
}

// Build creates the nodes, wires every declared edge, then drives each node
// declared with an initial true state, in declaration order.
func (b *CircuitBuilder) Build() (*Circuit, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	c := NewCircuit(b.id)
	for _, d := range b.order {
		opts := make([]Option, 0, len(b.opts)+len(d.opts)+1)
		opts = append(opts, b.opts...)
		opts = append(opts, d.opts...)
		opts = append(opts, WithName(d.name))
		if err := c.Add(NewNode(opts...)); err != nil {
			return nil, err
		}
	}

	for _, e := range b.edges {
		if err := Connect(c.nodes[e.from], c.nodes[e.to]); err != nil {
			return nil, fmt.Errorf("wire %s -> %s: %w", e.from, e.to, err)
		}
	}

	for _, d := range b.order {
		if d.initial {
			c.nodes[d.name].SetState(true)
		}
	}
	return c, nil
}

func (b *CircuitBuilder) validate() error {
	var errs []error
	for _, d := range b.order {
		if d.name == "" {
			errs = append(errs, ErrEmptyName)
		}
	}
	return errors.Join(errs...)
}

// Initial sets the state the node is driven to once the circuit is wired.
func (nb *NodeBuilder) Initial(state bool) *NodeBuilder {
	nb.decl.initial = state
	return nb
}

// Drives wires this node as an input of each named node, creating
// declarations for names not seen yet.
func (nb *NodeBuilder) Drives(names ...string) *NodeBuilder {
	for _, name := range names {
		nb.b.declare(name)
		nb.b.edges = append(nb.b.edges, edge{from: nb.decl.name, to: name})
	}
	return nb
}

// DrivenBy wires each named node as an input of this node.
func (nb *NodeBuilder) DrivenBy(names ...string) *NodeBuilder {
	for _, name := range names {
		nb.b.declare(name)
		nb.b.edges = append(nb.b.edges, edge{from: name, to: nb.decl.name})
	}
	return nb
}

// With appends node options. WithName is ignored; the declared name wins.
func (nb *NodeBuilder) With(opts ...Option) *NodeBuilder {
	nb.decl.opts = append(nb.decl.opts, opts...)
	return nb
}

// Name returns the declared node name.
func (nb *NodeBuilder) Name() string {
	return nb.decl.name
}
