// Package core defines the directed weighted Graph the hierarchy engines
// build from a dominance matrix, and the primitives for mutating and
// querying it.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for the
// vertex catalog, muEdgeAdj for edges and adjacency), so a Graph can be
// read from several goroutines while one goroutine mutates it.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is not a finite positive number.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - a second edge between the same ordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a weight that is NaN, ±Inf, zero or negative.
	ErrBadWeight = errors.New("core: edge weight must be finite and positive")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a directed weighted graph whose enumeration order is the order
// vertices were first added. Every listing (Vertices, Neighbors,
// Predecessors, Edges) follows that order, so traversals that walk it are
// reproducible for a given construction sequence.
type Graph struct {
	muVert    sync.RWMutex // guards order and index
	muEdgeAdj sync.RWMutex // guards out and in

	order []string       // insertion order of vertex IDs
	index map[string]int // vertex ID → position in order

	out map[string]map[string]float64 // from → to → weight
	in  map[string]map[string]float64 // to → from → weight
}

// NewGraph creates an empty directed Graph. Self-loops are always rejected.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		out:   make(map[string]map[string]float64),
		in:    make(map[string]map[string]float64),
	}
}
