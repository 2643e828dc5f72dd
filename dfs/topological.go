// Package dfs provides topological sorting by generations.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// The order is Kahn's algorithm run generation by generation: generation 0
// is every vertex without predecessors in insertion order; each next
// generation collects, in discovery order, the successors whose last
// remaining predecessor sat in the previous generation.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/hierarchia/core"
)

// TopologicalGenerations returns the generations described above.
// If g is nil, returns ErrGraphNil. You may pass WithCancelContext(ctx).
func TopologicalGenerations(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := applyOptions(opts)

	verts := g.Vertices()
	indeg := make(map[string]int, len(verts))
	var gen []string
	for _, v := range verts {
		d, err := g.InDegree(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		indeg[v] = d
		if d == 0 {
			gen = append(gen, v)
		}
	}

	var gens [][]string
	placed := 0
	for len(gen) > 0 {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		gens = append(gens, gen)
		placed += len(gen)
		var next []string
		for _, v := range gen {
			succ, err := g.Neighbors(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
			}
			for _, w := range succ {
				indeg[w]--
				if indeg[w] == 0 {
					next = append(next, w)
				}
			}
		}
		gen = next
	}
	if placed != len(verts) {
		return nil, ErrCycleDetected
	}

	return gens, nil
}

// TopologicalSort flattens TopologicalGenerations into a single ordering.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	gens, err := TopologicalGenerations(g, opts...)
	if err != nil {
		return nil, err
	}
	var order []string
	for _, gen := range gens {
		order = append(order, gen...)
	}

	return order, nil
}
