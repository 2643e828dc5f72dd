package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/core"
	"github.com/katalvlaran/hierarchia/dfs"
)

// buildGraph adds vertices in the given order, then the edges.
func buildGraph(t *testing.T, verts []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range verts {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestSCC_Cycles(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "c"}, {"c", "d"}, {"d", "a"}, {"c", "b"}, {"e", "b"}},
	)
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	// b finishes first, then the a-c-d cycle, then e.
	assert.Equal(t, [][]string{{"b"}, {"a", "c", "d"}, {"e"}}, comps)
	assert.Equal(t, []string{"a", "c", "d"}, dfs.Largest(comps))
}

func TestSCC_LargestTieTakesFirst(t *testing.T) {
	g := buildGraph(t,
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "a"}, {"c", "d"}, {"d", "c"}},
	)
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dfs.Largest(comps))
	assert.Nil(t, dfs.Largest(nil))
}

func TestSCC_Errors(t *testing.T) {
	_, err := dfs.StronglyConnectedComponents(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := buildGraph(t, []string{"a"}, nil)
	_, err = dfs.StronglyConnectedComponents(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
