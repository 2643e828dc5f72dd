// Package core provides the directed weighted graph used by hierarchia's
// acyclic-hierarchy extraction.
//
// Vertices are agent names. The graph remembers the order vertices were
// added and every listing follows it:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("a", "c", 2) // adds a, then c
//	_ = g.AddEdge("c", "b", 1) // adds b
//	g.Vertices()               // [a c b]
//
// Edge weights are finite positive float64 values; a dominance edge i→j
// carries the (possibly net) number of wins of i over j. At most one edge
// exists per ordered pair.
package core
