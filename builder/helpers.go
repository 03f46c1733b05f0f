// Package builder holds shortcuts for common wiring shapes.
package builder

import (
	"strconv"

	"github.com/comalice/signalx"
)

// Chain wires nodes[0] -> nodes[1] -> ... and returns the head of the chain.
func Chain(nodes ...*signalx.Node) *signalx.Node {
	if len(nodes) == 0 {
		return nil
	}
	for i := 1; i < len(nodes); i++ {
		nodes[i-1].AddOutput(nodes[i])
	}
	return nodes[0]
}

// FanOut wires src to every dst and returns src.
func FanOut(src *signalx.Node, dsts ...*signalx.Node) *signalx.Node {
	for _, dst := range dsts {
		src.AddOutput(dst)
	}
	return src
}

// FanIn wires every src to dst and returns dst.
func FanIn(dst *signalx.Node, srcs ...*signalx.Node) *signalx.Node {
	for _, src := range srcs {
		dst.AddInput(src)
	}
	return dst
}

// Nodes creates count nodes named prefix0, prefix1, ... sharing opts.
func Nodes(prefix string, count int, opts ...signalx.Option) []*signalx.Node {
	out := make([]*signalx.Node, count)
	for i := range out {
		nodeOpts := append([]signalx.Option{}, opts...)
		nodeOpts = append(nodeOpts, signalx.WithName(prefix+strconv.Itoa(i)))
		out[i] = signalx.NewNode(nodeOpts...)
	}
	return out
}
