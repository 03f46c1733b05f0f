package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/comalice/signalx"
)

var (
	ErrQueueFull = errors.New("request queue full")
	ErrStopped   = errors.New("runtime stopped")
)

// Runtime owns a circuit and applies state requests at fixed tick boundaries.
// Set, State and Snapshot are safe to call from any goroutine; the circuit is
// only touched while holding the runtime's state lock. Set may also be called
// from a Probe during a tick; the request lands in the next tick.
//
// Nodes added to the circuit after NewRuntime are unknown to the runtime.
type Runtime struct {
	circuit *signalx.Circuit
	names   map[string]struct{} // fixed at NewRuntime; read without locks
	stateMu sync.Mutex
	logger  *slog.Logger

	tickRate time.Duration
	ticker   *time.Ticker
	tickNum  uint64

	// Request batching
	batch       []Request
	batchMu     sync.Mutex
	sequenceNum uint64
	closed      bool

	sources []Source

	// Control
	tickCtx    context.Context
	tickCancel context.CancelFunc
	stopped    chan struct{}
	forwarders sync.WaitGroup
	stopOnce   sync.Once
	started    bool
}

// Config configures the runtime
type Config struct {
	TickRate           time.Duration // Fixed tick rate (default 16.67ms, 60 Hz)
	MaxRequestsPerTick int           // Request queue capacity (default: 1000)
	Logger             *slog.Logger  // Defaults to a discarding logger
}

// NewRuntime creates a tick-based runtime for c.
func NewRuntime(c *signalx.Circuit, cfg Config) *Runtime {
	if cfg.MaxRequestsPerTick == 0 {
		cfg.MaxRequestsPerTick = 1000
	}
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	names := make(map[string]struct{}, c.Len())
	for _, n := range c.Nodes() {
		names[n.Name()] = struct{}{}
	}

	return &Runtime{
		circuit:  c,
		names:    names,
		logger:   cfg.Logger.With(slog.String("circuit", c.ID())),
		tickRate: cfg.TickRate,
		batch:    make([]Request, 0, cfg.MaxRequestsPerTick),
		stopped:  make(chan struct{}),
	}
}

// Attach registers a request source. Sources attached before Start are
// forwarded from Start until Stop.
func (rt *Runtime) Attach(src Source) {
	rt.sources = append(rt.sources, src)
}

// Start begins tick-based execution
func (rt *Runtime) Start(ctx context.Context) error {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	if rt.started {
		return errors.New("runtime already started")
	}
	if rt.closed {
		return ErrStopped
	}
	rt.started = true

	rt.tickCtx, rt.tickCancel = context.WithCancel(ctx)
	rt.ticker = time.NewTicker(rt.tickRate)

	for _, src := range rt.sources {
		rt.forwarders.Add(1)
		go rt.forward(src)
	}

	go rt.tickLoop()

	rt.logger.Info("runtime started", slog.Duration("tick_rate", rt.tickRate), slog.Int("sources", len(rt.sources)))
	return nil
}

// Stop halts the tick loop and source forwarding. Requests still queued are
// discarded. Stop is idempotent.
func (rt *Runtime) Stop() error {
	rt.stopOnce.Do(func() {
		rt.batchMu.Lock()
		rt.closed = true
		started := rt.started
		rt.batchMu.Unlock()

		if !started {
			close(rt.stopped)
			return
		}
		rt.tickCancel()
		rt.ticker.Stop()

		// Wait for tick loop to exit
		<-rt.stopped
		rt.forwarders.Wait()
		rt.logger.Info("runtime stopped", slog.Uint64("ticks", rt.TickNumber()))
	})
	return nil
}

// tickLoop is the main tick execution loop
func (rt *Runtime) tickLoop() {
	defer close(rt.stopped)

	for {
		select {
		case <-rt.tickCtx.Done():
			return
		case <-rt.ticker.C:
			rt.Step()
		}
	}
}

// Step processes one tick on the calling goroutine. It is what the tick loop
// runs on every tick, and lets tests advance the runtime without a ticker.
func (rt *Runtime) Step() {
	func() {
		defer func() {
			if r := recover(); r != nil {
				rt.logger.Error("tick panicked", slog.Uint64("tick", rt.TickNumber()), slog.Any("panic", r))
			}
		}()
		rt.processTick()
	}()

	rt.batchMu.Lock()
	rt.tickNum++
	rt.batchMu.Unlock()
}

// forward copies requests from src into the batch until Stop.
func (rt *Runtime) forward(src Source) {
	defer rt.forwarders.Done()
	ch := src.Requests()
	for {
		select {
		case <-rt.tickCtx.Done():
			return
		case req, ok := <-ch:
			if !ok {
				return
			}
			if err := rt.SetWithPriority(req.Node, req.State, req.Priority); err != nil {
				rt.logger.Warn("source request rejected", slog.String("node", req.Node), slog.Any("error", err))
			}
		}
	}
}

// Set queues a request for the next tick (thread-safe).
func (rt *Runtime) Set(name string, state bool) error {
	return rt.SetWithPriority(name, state, 0)
}

// SetWithPriority queues a request with priority. Higher priorities are
// applied first within a tick.
func (rt *Runtime) SetWithPriority(name string, state bool, priority int) error {
	if _, known := rt.names[name]; !known {
		return fmt.Errorf("%w: %q", signalx.ErrUnknownNode, name)
	}

	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()

	if rt.closed {
		return ErrStopped
	}
	if len(rt.batch) >= cap(rt.batch) {
		return ErrQueueFull
	}

	rt.batch = append(rt.batch, Request{
		Node:        name,
		State:       state,
		Priority:    priority,
		SequenceNum: rt.sequenceNum,
	})
	rt.sequenceNum++
	return nil
}

// Pending returns the number of requests waiting for the next tick.
func (rt *Runtime) Pending() int {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	return len(rt.batch)
}

// TickNumber returns the number of ticks processed so far
func (rt *Runtime) TickNumber() uint64 {
	rt.batchMu.Lock()
	defer rt.batchMu.Unlock()
	return rt.tickNum
}

// State returns the state of the named node as of the last tick.
func (rt *Runtime) State(name string) (bool, error) {
	rt.stateMu.Lock()
	defer rt.stateMu.Unlock()
	return rt.circuit.State(name)
}

// Snapshot returns every node's state as of the last tick.
func (rt *Runtime) Snapshot() map[string]bool {
	rt.stateMu.Lock()
	defer rt.stateMu.Unlock()
	return rt.circuit.Snapshot()
}
