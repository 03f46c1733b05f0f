// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/builder"
	"github.com/comalice/signalx/internal/schema"
)

// GenChain creates n nodes wired head to tail and returns them.
func GenChain(n int, opts ...signalx.Option) []*signalx.Node {
	if n < 1 {
		n = 1
	}
	nodes := builder.Nodes("n", n, opts...)
	builder.Chain(nodes...)
	return nodes
}

// GenFanOut creates one source driving width sinks. The source is first.
func GenFanOut(width int, opts ...signalx.Option) []*signalx.Node {
	if width < 1 {
		width = 1
	}
	nodes := builder.Nodes("f", width+1, opts...)
	builder.FanOut(nodes[0], nodes[1:]...)
	return nodes
}

// GenLattice creates layers of width nodes where every node drives every node
// of the next layer. In edge mode a node in layer k is notified width^k times.
func GenLattice(layers, width int, opts ...signalx.Option) *signalx.Node {
	if layers < 1 {
		layers = 1
	}
	if width < 1 {
		width = 1
	}
	root := signalx.NewNode(append(opts, signalx.WithName("root"))...)
	prev := []*signalx.Node{root}
	for l := 0; l < layers; l++ {
		layer := builder.Nodes(fmt.Sprintf("l%d_", l), width, opts...)
		for _, src := range prev {
			builder.FanOut(src, layer...)
		}
		prev = layer
	}
	return root
}

// GenChainConfig describes a chain of n nodes as a circuit document.
func GenChainConfig(n int) schema.CircuitConfig {
	if n < 1 {
		n = 1
	}
	cfg := schema.CircuitConfig{
		ID:    fmt.Sprintf("chain_%d", n),
		Nodes: make([]schema.NodeConfig, n),
	}
	for i := range cfg.Nodes {
		cfg.Nodes[i].Name = fmt.Sprintf("n%d", i)
		if i+1 < n {
			cfg.Nodes[i].Outputs = []string{fmt.Sprintf("n%d", i+1)}
		}
	}
	return cfg
}

// GenChainYAML generates YAML bytes for a chain document of n nodes.
func GenChainYAML(n int) []byte {
	data, err := yaml.Marshal(GenChainConfig(n))
	if err != nil {
		panic(err)
	}
	return data
}
