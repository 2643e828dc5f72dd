package adagio

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hierarchia/core"
	"github.com/katalvlaran/hierarchia/dominance"
)

// RankMode selects how the acyclic graph is turned into ranks.
type RankMode string

const (
	// Topological assigns consecutive ranks along a topological order.
	Topological RankMode = "topological"
	// Top assigns levels downward from the agents nobody dominates.
	Top RankMode = "top"
	// Bottom assigns levels upward from the agents who dominate nobody,
	// then inverts them so 0 is still the most dominant level.
	Bottom RankMode = "bottom"
)

// ParseRankMode accepts "topological", "top" or "bottom" case-insensitively.
func ParseRankMode(s string) (RankMode, error) {
	m := RankMode(strings.ToLower(s))
	if err := m.Validate(); err != nil {
		return "", err
	}

	return m, nil
}

// Validate reports ErrUnknownRankMode for anything but the three modes.
func (m RankMode) Validate() error {
	switch m {
	case Topological, Top, Bottom:
		return nil
	}

	return dominance.Precondition(dominance.ErrUnknownRankMode, "%q (want topological, top or bottom)", string(m))
}

// Config parameterises Adagio.
type Config struct {
	// Preprocessing replaces each weight M[i][j] by max(0, M[i][j]-M[j][i]).
	Preprocessing bool
	// PlotNetwork emits the initial network on the logger for rendering.
	PlotNetwork bool
	// Rank selects the final ranking mode.
	Rank RankMode
	// Logger receives the network dump; nil uses the global logger.
	Logger *zerolog.Logger
}

// DefaultConfig returns topological ranking without preprocessing.
func DefaultConfig() Config {
	return Config{Rank: Topological}
}

// Result is the ranking together with the graph it was derived from.
type Result struct {
	Ranks dominance.Ranks
	// Removed lists the edges deleted to break cycles, in deletion order.
	Removed []core.Edge

	graph *core.Graph
}

// Network returns the edges of the final acyclic graph.
func (r Result) Network() []core.Edge {
	if r.graph == nil {
		return nil
	}

	return r.graph.Edges()
}

// Graph returns a copy of the final acyclic graph.
func (r Result) Graph() *core.Graph {
	if r.graph == nil {
		return nil
	}

	return r.graph.Clone()
}
