package adagio_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/adagio"
	"github.com/katalvlaran/hierarchia/core"
	"github.com/katalvlaran/hierarchia/dfs"
	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/internal/fixtures"
)

func paper(t testing.TB) *dominance.Store {
	t.Helper()
	s, err := dominance.FromMatrix(fixtures.Adagio6(), fixtures.AdagioNames)
	require.NoError(t, err)

	return s
}

func TestAdagio_RankModes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		preprocessing bool
		rank          adagio.RankMode
		want          map[string]int
	}{
		{"topological", true, adagio.Topological, map[string]int{"a": 0, "f": 1, "c": 2, "d": 3, "e": 4, "b": 5}},
		{"top", true, adagio.Top, map[string]int{"a": 0, "f": 0, "c": 1, "d": 2, "e": 2, "b": 3}},
		{"bottom", true, adagio.Bottom, map[string]int{"b": 3, "e": 3, "d": 2, "c": 1, "f": 1, "a": 0}},
		{"bottom without preprocessing", false, adagio.Bottom, map[string]int{"b": 3, "e": 3, "d": 2, "c": 1, "f": 1, "a": 0}},
		{"top without preprocessing", false, adagio.Top, map[string]int{"a": 0, "f": 0, "c": 1, "d": 2, "e": 2, "b": 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := adagio.Adagio(paper(t), adagio.Config{Preprocessing: tc.preprocessing, Rank: tc.rank})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Ranks.Map())
		})
	}
}

func TestAdagio_BreaksCycle(t *testing.T) {
	t.Parallel()
	res, err := adagio.Adagio(paper(t), adagio.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "d", To: "a", Weight: 1}}, res.Removed)

	g := res.Graph()
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Len(t, dfs.Largest(comps), 1)
	assert.False(t, g.HasEdge("d", "a"))
	assert.Len(t, res.Network(), g.EdgeCount())
}

func TestAdagio_RemovesAllMinimumEdgesAtOnce(t *testing.T) {
	t.Parallel()
	// Two 3-cycles sharing the weight-1 minimum in one component.
	rows := [][]float64{
		{0, 2, 0, 1},
		{0, 0, 1, 0},
		{3, 0, 0, 0},
		{0, 0, 2, 0},
	}
	s, err := dominance.FromMatrix(rows, []string{"w", "x", "y", "z"})
	require.NoError(t, err)
	res, err := adagio.Adagio(s, adagio.DefaultConfig())
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Edge{
		{From: "w", To: "z", Weight: 1},
		{From: "x", To: "y", Weight: 1},
	}, res.Removed)
	assert.Len(t, res.Ranks, 4)
}

func TestAdagio_Bijection(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]float64{fixtures.Hemelrijk(), fixtures.DeVries(), fixtures.Appleby()} {
		s, err := dominance.FromMatrix(rows, dominance.PositionalNames(len(rows)))
		require.NoError(t, err)
		res, err := adagio.Adagio(s, adagio.Config{Preprocessing: true, Rank: adagio.Topological})
		require.NoError(t, err)
		seen := make(map[int]bool)
		for _, r := range res.Ranks {
			seen[r.Rank] = true
		}
		assert.Len(t, seen, s.N())
	}
}

func TestAdagio_UnknownRankMode(t *testing.T) {
	t.Parallel()
	_, err := adagio.Adagio(paper(t), adagio.Config{Rank: "sideways"})
	assert.ErrorIs(t, err, dominance.ErrPrecondition)
	assert.ErrorIs(t, err, dominance.ErrUnknownRankMode)
}

func TestParseRankMode(t *testing.T) {
	t.Parallel()
	m, err := adagio.ParseRankMode("TOP")
	require.NoError(t, err)
	assert.Equal(t, adagio.Top, m)
	_, err = adagio.ParseRankMode("")
	assert.ErrorIs(t, err, dominance.ErrUnknownRankMode)
}

func TestAdagio_PlotNetworkLogsEdges(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	cfg := adagio.DefaultConfig()
	cfg.PlotNetwork = true
	cfg.Logger = &logger
	_, err := adagio.Adagio(paper(t), cfg)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"d->a:1"`)
	assert.Contains(t, buf.String(), `"edges":8`)
}
