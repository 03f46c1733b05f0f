// Package realtime provides a tick-based, goroutine-safe runtime for signalx
// circuits.
//
// Nodes themselves are single-threaded. The runtime accepts Set requests from
// any goroutine, batches them, and applies the batch on the tick goroutine:
//   - Requests are applied at fixed tick boundaries
//   - Ordering is deterministic: priority first, then submission order
//   - Each request runs a full synchronous cascade before the next one
//
// # Example Usage
//
//	b := signalx.NewCircuitBuilder("hall")
//	b.Node("switch").Drives("lamp")
//	c, _ := b.Build()
//
//	rt := realtime.NewRuntime(c, realtime.Config{
//		TickRate: 10 * time.Millisecond,
//	})
//	rt.Attach(realtime.NewClock("switch", time.Second))
//	rt.Start(ctx)
//	defer rt.Stop()
//
// # Request Ordering Guarantees
//
// Requests are ordered using:
//  1. Priority (higher priority applied first)
//  2. Sequence number (FIFO for same priority)
//  3. Stable sorting (preserves relative order)
//
// Given the same sequence of Set calls, the circuit ends each tick in the same
// state regardless of goroutine scheduling.
//
// Step runs a single tick synchronously, which is how tests drive the runtime
// without a ticker.
package realtime
