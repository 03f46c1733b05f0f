package benchmarks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/realtime"
)

// Realtime Runtime Benchmarks
//
// These benchmarks measure actual system performance and behavior:
// - Step: time to sort and apply a full request batch
// - Throughput: requests applied per second by a running tick loop
// - Latency: time from Set to the change being visible

func benchmarkCircuit(b *testing.B, n int, opts ...signalx.Option) *signalx.Circuit {
	b.Helper()
	bld := signalx.NewCircuitBuilder("bench", opts...)
	prev := bld.Node("n0")
	for i := 1; i < n; i++ {
		next := bld.Node(fmt.Sprintf("n%d", i))
		prev.Drives(next.Name())
		prev = next
	}
	c, err := bld.Build()
	if err != nil {
		b.Fatal(err)
	}
	return c
}

// BenchmarkStep measures one tick applying a full batch of requests.
func BenchmarkStep(b *testing.B) {
	c := benchmarkCircuit(b, 10)
	rt := realtime.NewRuntime(c, realtime.Config{MaxRequestsPerTick: 100})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 100; j++ {
			if err := rt.SetWithPriority("n0", j%2 == 0, j%3); err != nil {
				b.Fatal(err)
			}
		}
		b.StartTimer()
		rt.Step()
	}
}

// BenchmarkRealtimeThroughput measures requests actually applied per second,
// verified by counting state flips at the head of the chain.
func BenchmarkRealtimeThroughput(b *testing.B) {
	var flips int64
	count := signalx.ProbeFunc(func(ev signalx.Event) {
		if ev.Kind == signalx.Changed && ev.Depth == 0 {
			atomic.AddInt64(&flips, 1)
		}
	})
	c := benchmarkCircuit(b, 10, signalx.WithProbe(count))

	rt := realtime.NewRuntime(c, realtime.Config{
		TickRate:           time.Millisecond,
		MaxRequestsPerTick: 10000,
	})
	if err := rt.Start(context.Background()); err != nil {
		b.Fatal(err)
	}
	defer rt.Stop()

	b.ReportAllocs()
	b.ResetTimer()

	// Alternate states so every accepted request flips the head, one per tick
	// at most, since the last request in a tick wins.
	accepted := int64(0)
	for i := 0; i < b.N; i++ {
		want := atomic.LoadInt64(&flips)
		if err := rt.Set("n0", want%2 == 0); err != nil {
			if errors.Is(err, realtime.ErrQueueFull) {
				continue
			}
			b.Fatal(err)
		}
		accepted++
		for atomic.LoadInt64(&flips) == want {
			time.Sleep(50 * time.Microsecond)
		}
	}

	b.StopTimer()
	b.ReportMetric(float64(accepted), "requests")
}

// BenchmarkConcurrentSet measures queueing from many goroutines.
func BenchmarkConcurrentSet(b *testing.B) {
	c := benchmarkCircuit(b, 2)
	rt := realtime.NewRuntime(c, realtime.Config{MaxRequestsPerTick: 1 << 20})

	numWorkers := 8
	perWorker := b.N/numWorkers + 1
	var full int64
	var wg sync.WaitGroup

	b.ReportAllocs()
	b.ResetTimer()
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := rt.Set("n0", (i+w)%2 == 0); err != nil {
					atomic.AddInt64(&full, 1)
					rt.Step()
				}
			}
		}(w)
	}
	wg.Wait()
	b.StopTimer()

	rt.Step()
	b.ReportMetric(float64(atomic.LoadInt64(&full)), "queue-full")
}
