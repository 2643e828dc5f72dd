// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From index, To index).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates the directed edge from→to carrying weight.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge on the same ordered pair.
//  4. Store in both out and in adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("AddEdge(%s→%s, %g): %w", from, to, weight, ErrBadWeight)
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.out[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}
	g.out[from][to] = weight
	g.in[to][from] = weight

	return nil
}

// RemoveEdge deletes the edge from→to.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.out[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%s→%s): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.out[from], to)
	delete(g.in[to], from)

	return nil
}

// HasEdge reports whether the edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	w, ok := g.out[from][to]
	if !ok {
		return 0, fmt.Errorf("Weight(%s→%s): %w", from, to, ErrEdgeNotFound)
	}

	return w, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	n := 0
	for _, m := range g.out {
		n += len(m)
	}

	return n
}

// Edges returns every edge ordered by (From index, To index).
// Complexity: O(V + E log E) worst case.
func (g *Graph) Edges() []Edge {
	order := g.Vertices()
	var out []Edge
	for _, from := range order {
		succ, _ := g.Neighbors(from)
		for _, to := range succ {
			w, _ := g.Weight(from, to)
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}

	return out
}
