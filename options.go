package signalx

import (
	"fmt"
	"strings"
)

// Mode selects how a cascade treats nodes reachable along more than one path.
type Mode int

const (
	// ModeEdge delivers once per edge traversed. In a diamond the join node is
	// notified once per incoming path.
	ModeEdge Mode = iota
	// ModeOnce delivers at most once per node within a single cascade.
	ModeOnce
)

func (m Mode) String() string {
	switch m {
	case ModeEdge:
		return "edge"
	case ModeOnce:
		return "once"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "edge" or "once". The empty string selects ModeEdge.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edge":
		return ModeEdge, nil
	case "once":
		return ModeOnce, nil
	default:
		return ModeEdge, fmt.Errorf("unknown propagation mode %q", s)
	}
}

// Option configures a Node at construction.
type Option func(*Node)

// WithName sets the node's display name. Circuits key nodes by name.
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// WithID overrides the generated node ID.
func WithID(id string) Option {
	return func(n *Node) {
		n.id = id
	}
}

// WithProbe attaches a probe that observes every event delivered to the node.
func WithProbe(p Probe) Option {
	return func(n *Node) {
		n.probe = p
	}
}

// WithMode sets the propagation mode used for cascades started at the node.
func WithMode(m Mode) Option {
	return func(n *Node) {
		n.mode = m
	}
}
