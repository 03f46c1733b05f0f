package signalx

import "fmt"

// Circuit is a named collection of nodes. It adds lookup by name on top of
// the node graph; the graph itself lives in the nodes' edges.
type Circuit struct {
	id    string
	nodes map[string]*Node
	order []*Node
}

// NewCircuit creates an empty circuit.
func NewCircuit(id string) *Circuit {
	return &Circuit{
		id:    id,
		nodes: make(map[string]*Node),
	}
}

func (c *Circuit) ID() string { return c.id }

// Len returns the number of nodes.
func (c *Circuit) Len() int { return len(c.order) }

// Add registers n under its name.
func (c *Circuit) Add(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.name == "" {
		return ErrEmptyName
	}
	if _, exists := c.nodes[n.name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.name)
	}
	c.nodes[n.name] = n
	c.order = append(c.order, n)
	return nil
}

// Node looks a node up by name.
func (c *Circuit) Node(name string) (*Node, bool) {
	n, ok := c.nodes[name]
	return n, ok
}

// Nodes returns the nodes in the order they were added.
func (c *Circuit) Nodes() []*Node {
	out := make([]*Node, len(c.order))
	copy(out, c.order)
	return out
}

// Set drives the named node to state.
func (c *Circuit) Set(name string, state bool) error {
	n, ok := c.nodes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	n.SetState(state)
	return nil
}

// State returns the state of the named node.
func (c *Circuit) State(name string) (bool, error) {
	n, ok := c.nodes[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n.State(), nil
}

// Snapshot returns the state of every node keyed by name.
func (c *Circuit) Snapshot() map[string]bool {
	snap := make(map[string]bool, len(c.order))
	for _, n := range c.order {
		snap[n.name] = n.state
	}
	return snap
}
