// File: methods_clone.go
// Role: Deep copy of a Graph, preserving vertex order.

package core

// Clone returns an independent deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()

	g.muVert.RLock()
	c.order = append([]string(nil), g.order...)
	for k, v := range g.index {
		c.index[k] = v
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for id, m := range g.out {
		cp := make(map[string]float64, len(m))
		for k, w := range m {
			cp[k] = w
		}
		c.out[id] = cp
	}
	for id, m := range g.in {
		cp := make(map[string]float64, len(m))
		for k, w := range m {
			cp[k] = w
		}
		c.in[id] = cp
	}

	return c
}
