package adagio

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/hierarchia/core"
	"github.com/katalvlaran/hierarchia/dfs"
	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/matrix"
)

// Adagio builds the dominance network of s, removes cycles and ranks the
// agents according to cfg.Rank.
//
// Every agent becomes a vertex; i→j carries weight M[i][j] when it is
// positive (self counts are ignored). While the largest strongly connected
// component has more than one member, all of its internal edges at the
// minimum weight are removed in one batch and the components recomputed.
//
// Errors: ErrPrecondition/ErrUnknownRankMode for an unrecognised cfg.Rank.
func Adagio(s *dominance.Store, cfg Config) (Result, error) {
	if err := cfg.Rank.Validate(); err != nil {
		return Result{}, err
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	g, err := network(s, cfg.Preprocessing)
	if err != nil {
		return Result{}, err
	}
	if cfg.PlotNetwork {
		ev := logger.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount())
		edges := g.Edges()
		list := make([]string, len(edges))
		for k, e := range edges {
			list[k] = fmt.Sprintf("%s->%s:%g", e.From, e.To, e.Weight)
		}
		ev.Strs("network", list).Msg("adagio dominance network")
	}

	removed, err := breakCycles(g)
	if err != nil {
		return Result{}, err
	}

	var ranks dominance.Ranks
	switch cfg.Rank {
	case Topological:
		ranks, err = topological(g)
	case Top:
		ranks, err = levels(g, false)
	case Bottom:
		ranks, err = levels(g, true)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Ranks: ranks, Removed: removed, graph: g}, nil
}

// network builds the weighted digraph, optionally on net wins.
func network(s *dominance.Store, preprocessing bool) (*core.Graph, error) {
	m := s.Counts()
	if preprocessing {
		t, err := matrix.Transpose(m)
		if err != nil {
			return nil, err
		}
		diff, err := matrix.Sub(m, t)
		if err != nil {
			return nil, err
		}
		if m, err = matrix.ClampMin(diff, 0); err != nil {
			return nil, err
		}
	}

	g := core.NewGraph()
	names := s.Names()
	for _, name := range names {
		if err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}
	n := len(names)
	var i, j int
	for i = 0; i < n; i++ {
		row, err := m.RowView(i)
		if err != nil {
			return nil, err
		}
		for j = 0; j < n; j++ {
			if i == j || row[j] <= 0 {
				continue
			}
			if err = g.AddEdge(names[i], names[j], row[j]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// breakCycles deletes the minimum-weight edges inside the largest strongly
// connected component until it is a single vertex.
func breakCycles(g *core.Graph) ([]core.Edge, error) {
	var removed []core.Edge
	for {
		comps, err := dfs.StronglyConnectedComponents(g)
		if err != nil {
			return nil, err
		}
		largest := dfs.Largest(comps)
		if len(largest) <= 1 {
			return removed, nil
		}

		var inside []core.Edge
		lowest := 0.0
		for _, u := range largest {
			for _, v := range largest {
				w, err := g.Weight(u, v)
				if err != nil {
					continue
				}
				if len(inside) == 0 || w < lowest {
					lowest = w
				}
				inside = append(inside, core.Edge{From: u, To: v, Weight: w})
			}
		}
		for _, e := range inside {
			if e.Weight != lowest {
				continue
			}
			if err = g.RemoveEdge(e.From, e.To); err != nil {
				return nil, err
			}
			removed = append(removed, e)
		}
	}
}

func topological(g *core.Graph) (dominance.Ranks, error) {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	out := make(dominance.Ranks, len(order))
	for k, v := range order {
		out[k] = dominance.Rank{Agent: v, Rank: k}
	}

	return out, nil
}

// levels walks a topological order (reversed when fromBottom) and assigns
// levels. A vertex without parents takes the current level. A vertex whose
// parents are all ranked waits in the pending group; meeting a vertex with
// an unranked parent closes the group on the next level. Parents are
// predecessors from the top and successors from the bottom. Bottom levels
// are inverted at the end.
func levels(g *core.Graph, fromBottom bool) (dominance.Ranks, error) {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}
	parents := g.Predecessors
	if fromBottom {
		order = dfs.Reverse(order)
		parents = g.Neighbors
	}

	rank := make(map[string]int, len(order))
	var emitted, pending []string
	level := 0
	for len(order) > 0 {
		v := order[0]
		ps, err := parents(v)
		if err != nil {
			return nil, err
		}
		if len(ps) == 0 {
			rank[v] = level
			emitted = append(emitted, v)
			order = order[1:]
			continue
		}
		if !allRanked(ps, rank) {
			level++
			for _, p := range pending {
				rank[p] = level
			}
			emitted = append(emitted, pending...)
			pending = nil
			continue
		}
		pending = append(pending, v)
		order = order[1:]
	}
	if fromBottom {
		level++
	} else if len(pending) > 0 {
		level++
	}
	for _, p := range pending {
		rank[p] = level
	}
	emitted = append(emitted, pending...)

	out := make(dominance.Ranks, len(emitted))
	for k, v := range emitted {
		r := rank[v]
		if fromBottom {
			r = level - r
		}
		out[k] = dominance.Rank{Agent: v, Rank: r}
	}

	return out, nil
}

func allRanked(vs []string, rank map[string]int) bool {
	for _, v := range vs {
		if _, ok := rank[v]; !ok {
			return false
		}
	}

	return true
}
