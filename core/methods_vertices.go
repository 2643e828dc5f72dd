// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert, append to the insertion order if missing.
//   - Stage 3: Under muEdgeAdj, bootstrap adjacency buckets.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	if _, ok := g.index[id]; ok {
		g.muVert.Unlock()
		return nil
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.out[id] = make(map[string]float64)
	g.in[id] = make(map[string]float64)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[id]

	return ok
}

// VertexIndex returns the insertion position of id.
func (g *Graph) VertexIndex(id string) (int, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	i, ok := g.index[id]

	return i, ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}
