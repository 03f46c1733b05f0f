package testutil

import (
	"github.com/comalice/signalx"
	"github.com/comalice/signalx/realtime"
)

// DriverAdapter provides a common interface over a bare circuit and a
// tick-based runtime. This allows running the same scenarios on both.
type DriverAdapter interface {
	Set(name string, state bool) error
	State(name string) (bool, error)
	// Settle returns once every accepted Set has been applied.
	Settle()
}

// CircuitAdapter drives a circuit directly on the calling goroutine.
type CircuitAdapter struct {
	c *signalx.Circuit
}

// NewCircuitAdapter creates a new adapter for a bare circuit.
func NewCircuitAdapter(c *signalx.Circuit) *CircuitAdapter {
	return &CircuitAdapter{c: c}
}

func (a *CircuitAdapter) Set(name string, state bool) error {
	return a.c.Set(name, state)
}

func (a *CircuitAdapter) State(name string) (bool, error) {
	return a.c.State(name)
}

// Settle is a no-op; Set applies synchronously.
func (a *CircuitAdapter) Settle() {}

// RuntimeAdapter wraps the tick-based runtime. The tick loop is never started;
// Settle steps it manually so scenarios stay deterministic.
type RuntimeAdapter struct {
	rt *realtime.Runtime
}

// NewRuntimeAdapter creates a new adapter for the tick-based runtime.
func NewRuntimeAdapter(c *signalx.Circuit, cfg realtime.Config) *RuntimeAdapter {
	return &RuntimeAdapter{rt: realtime.NewRuntime(c, cfg)}
}

func (a *RuntimeAdapter) Set(name string, state bool) error {
	return a.rt.Set(name, state)
}

func (a *RuntimeAdapter) State(name string) (bool, error) {
	return a.rt.State(name)
}

func (a *RuntimeAdapter) Settle() {
	a.rt.Step()
}

// Runtime exposes the wrapped runtime.
func (a *RuntimeAdapter) Runtime() *realtime.Runtime {
	return a.rt
}
