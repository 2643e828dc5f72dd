package dfs_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/hierarchia/core"
	"github.com/katalvlaran/hierarchia/dfs"
)

// BenchmarkSCC runs Tarjan on a 200-vertex ring (one big component).
func BenchmarkSCC(b *testing.B) {
	const n = 200
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.StronglyConnectedComponents(g); err != nil {
			b.Fatal(err)
		}
	}
}
