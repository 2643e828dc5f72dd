// Package dfs defines the shared errors and options for the depth-first
// algorithms over core.Graph.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort or StronglyConnectedComponents.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior, currently only cancellation.
type Option func(*options)

type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
