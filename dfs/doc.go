// Package dfs implements the graph traversals hierarchia's acyclic-hierarchy
// extraction needs on a core.Graph:
//
//   - StronglyConnectedComponents: Tarjan's algorithm; components are
//     emitted in completion order and Largest picks the first of maximal size.
//   - TopologicalGenerations / TopologicalSort: Kahn's algorithm by
//     generations, returning ErrCycleDetected if cycles exist.
//
// Both walk vertices and successors in the graph's insertion order, so
// results are reproducible for a given construction sequence. Both honor
// WithCancelContext between vertices.
//
// Complexity:
//
//   - StronglyConnectedComponents: Time O(V+E), Memory O(V)
//   - TopologicalSort:             Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil if the graph pointer is nil.
//   - ErrCycleDetected if TopologicalSort finds a cycle.
//   - ErrNeighborFetch if adjacency lookup fails.
package dfs
