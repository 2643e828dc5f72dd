// Package dfs - strongly connected components (Tarjan).
//
// StronglyConnectedComponents visits roots in vertex insertion order and
// successors in insertion order, emitting each component when its root
// finishes. Members inside a component are listed in insertion order.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hierarchia/core"
)

// tarjan holds the traversal state for one SCC run.
type tarjan struct {
	graph   *core.Graph
	opts    options
	counter int
	index   map[string]int
	low     map[string]int
	onStack map[string]bool
	stack   []string
	comps   [][]string
}

// StronglyConnectedComponents partitions g into its strongly connected
// components, returned in completion order.
// If g is nil, returns ErrGraphNil.
func StronglyConnectedComponents(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	t := &tarjan{
		graph:   g,
		opts:    applyOptions(opts),
		index:   make(map[string]int),
		low:     make(map[string]int),
		onStack: make(map[string]bool),
	}
	for _, v := range g.Vertices() {
		if _, seen := t.index[v]; seen {
			continue
		}
		if err := t.visit(v); err != nil {
			return nil, err
		}
	}

	return t.comps, nil
}

func (t *tarjan) visit(v string) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	succ, err := t.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, w := range succ {
		if _, seen := t.index[w]; !seen {
			if err = t.visit(w); err != nil {
				return err
			}
			t.low[v] = min(t.low[v], t.low[w])
		} else if t.onStack[w] {
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return nil
	}
	// v is a root: pop its component.
	var comp []string
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		comp = append(comp, top)
		if top == v {
			break
		}
	}
	sort.Slice(comp, func(a, b int) bool {
		ia, _ := t.graph.VertexIndex(comp[a])
		ib, _ := t.graph.VertexIndex(comp[b])
		return ia < ib
	})
	t.comps = append(t.comps, comp)

	return nil
}

// Largest returns the first component of maximal size, or nil when comps
// is empty.
func Largest(comps [][]string) []string {
	var best []string
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}
