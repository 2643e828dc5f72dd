package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/hierarchia/core"
)

// BenchmarkAddEdge measures building a complete tournament on 64 agents.
func BenchmarkAddEdge(b *testing.B) {
	const n = 64
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	b.ReportAllocs()
	for it := 0; it < b.N; it++ {
		g := core.NewGraph()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				_ = g.AddEdge(ids[i], ids[j], 1)
			}
		}
	}
}
