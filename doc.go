// Package signalx models boolean signal nodes wired into a directed graph.
//
// Each Node holds one boolean state. Inputs drive a node and outputs are
// driven by it; every edge is recorded in both endpoints. Changing a node's
// state with SetState pushes the new value to each output, which in turn
// pushes it further whenever its own state flips:
//
//	lamp := signalx.NewNode(signalx.WithName("lamp"))
//	sw := signalx.NewNode(signalx.WithName("switch")).AddOutput(lamp)
//	sw.SetState(true)
//	lamp.State() // true
//
// # Propagation
//
// Cascades are synchronous and depth-first. They run on an explicit worklist,
// so graph depth does not grow the call stack, and cycles settle as soon as a
// node already holds the cascaded value.
//
// With ModeEdge (the default) a node reachable along two paths is notified
// twice; ModeOnce delivers at most once per node per cascade. Attach a Probe
// to count deliveries and flips.
//
// Nodes are not safe for concurrent use. The realtime package batches
// requests from many goroutines and applies them on a single tick goroutine.
package signalx
