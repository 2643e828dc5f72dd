// File: methods_adjacent.go
// Role: Ordered neighborhood queries: Neighbors, Predecessors, InDegree, OutDegree.
// Determinism:
//   - Neighbor lists are ordered by vertex insertion index.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the successors of id ordered by insertion index.
// Returns ErrVertexNotFound for unknown id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	return g.adjacent(id, true)
}

// Predecessors returns the vertices with an edge into id, ordered by
// insertion index.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.adjacent(id, false)
}

// OutDegree returns the number of successors of id.
func (g *Graph) OutDegree(id string) (int, error) {
	n, err := g.adjacent(id, true)
	return len(n), err
}

// InDegree returns the number of predecessors of id.
func (g *Graph) InDegree(id string) (int, error) {
	n, err := g.adjacent(id, false)
	return len(n), err
}

func (g *Graph) adjacent(id string, outgoing bool) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("adjacent(%s): %w", id, ErrVertexNotFound)
	}

	// Snapshot the bucket keys, then order them by insertion index.
	g.muEdgeAdj.RLock()
	bucket := g.in[id]
	if outgoing {
		bucket = g.out[id]
	}
	ids := make([]string, 0, len(bucket))
	for k := range bucket {
		ids = append(ids, k)
	}
	g.muEdgeAdj.RUnlock()

	g.muVert.RLock()
	sort.Slice(ids, func(a, b int) bool { return g.index[ids[a]] < g.index[ids[b]] })
	g.muVert.RUnlock()

	return ids, nil
}
