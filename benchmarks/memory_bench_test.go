// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/signalx"
	"github.com/comalice/signalx/internal/schema"
)

func BenchmarkMemoryFootprint(b *testing.B) {
	numNodes := 1000
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	nodes := make([]*signalx.Node, numNodes)
	for i := 0; i < numNodes; i++ {
		nodes[i] = signalx.NewNode()
	}
	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	bytesPerNode := (after.TotalAlloc - before.TotalAlloc) / uint64(numNodes)
	b.ReportMetric(float64(bytesPerNode), "B/node")
	runtime.KeepAlive(nodes)
}

func BenchmarkMemoryChain(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("nodes=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				GenChain(n)
			}
		})
	}
}

func BenchmarkDecodeAndBuild(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("nodes=%d", n), func(b *testing.B) {
			data := GenChainYAML(n)
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				decodeAndBuild(b, data)
			}
		})
	}
}

func decodeAndBuild(b *testing.B, data []byte) *signalx.Circuit {
	b.Helper()
	cfg, err := schema.Decode(data, schema.YAML)
	if err != nil {
		b.Fatal(err)
	}
	c, err := schema.Build(cfg)
	if err != nil {
		b.Fatal(err)
	}
	return c
}
