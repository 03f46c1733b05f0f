package schema

import (
	"fmt"

	"github.com/comalice/signalx"
)

// Build validates cfg and wires a live circuit from it. opts apply to every
// node; a mode set in the document overrides any mode in opts.
func Build(cfg CircuitConfig, opts ...signalx.Option) (*signalx.Circuit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	all := append([]signalx.Option{}, opts...)
	if cfg.Mode != "" {
		mode, err := signalx.ParseMode(cfg.Mode)
		if err != nil {
			return nil, err
		}
		all = append(all, signalx.WithMode(mode))
	}
	b := signalx.NewCircuitBuilder(cfg.ID, all...)

	// Declare every node first so circuit order follows the document.
	for _, n := range cfg.Nodes {
		b.Node(n.Name)
	}
	for _, n := range cfg.Nodes {
		b.Node(n.Name).
			Initial(n.Initial).
			DrivenBy(n.Inputs...).
			Drives(n.Outputs...)
	}

	c, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build circuit %q: %w", cfg.ID, err)
	}
	return c, nil
}

// FromCircuit describes a live circuit as a document. Edges are listed once,
// on the driving node; initial states capture the current states.
func FromCircuit(c *signalx.Circuit) CircuitConfig {
	cfg := CircuitConfig{ID: c.ID()}
	nodes := c.Nodes()
	if len(nodes) > 0 && nodes[0].Mode() != signalx.ModeEdge {
		cfg.Mode = nodes[0].Mode().String()
	}
	for _, n := range nodes {
		nc := NodeConfig{Name: n.Name(), Initial: n.State()}
		for _, out := range n.Outputs() {
			nc.Outputs = append(nc.Outputs, out.Name())
		}
		cfg.Nodes = append(cfg.Nodes, nc)
	}
	return cfg
}
