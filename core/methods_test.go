package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierarchia/core"
)

func TestAddEdge_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("d", "a", 1))
	require.NoError(t, g.AddEdge("a", "c", 2))
	require.NoError(t, g.AddEdge("a", "b", 3))
	require.NoError(t, g.AddEdge("b", "c", 1))

	assert.Equal(t, []string{"d", "a", "c", "b"}, g.Vertices())

	succ, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, succ, "successors follow vertex insertion order")

	pred, err := g.Predecessors("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, pred)

	assert.Equal(t, []core.Edge{
		{From: "d", To: "a", Weight: 1},
		{From: "a", To: "c", Weight: 2},
		{From: "a", To: "b", Weight: 3},
		{From: "b", To: "c", Weight: 1},
	}, g.Edges())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "x", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("x", "x", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("x", "y", 0), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge("x", "y", math.NaN()), core.ErrBadWeight)
	require.NoError(t, g.AddEdge("x", "y", 1))
	assert.ErrorIs(t, g.AddEdge("x", "y", 2), core.ErrMultiEdgeNotAllowed)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("x", "y", 4))
	w, err := g.Weight("x", "y")
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)

	require.NoError(t, g.RemoveEdge("x", "y"))
	assert.False(t, g.HasEdge("x", "y"))
	assert.ErrorIs(t, g.RemoveEdge("x", "y"), core.ErrEdgeNotFound)
	_, err = g.Weight("x", "y")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// Vertices survive edge removal.
	assert.Equal(t, 2, g.VertexCount())
	d, err := g.InDegree("y")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", 1))
	c := g.Clone()
	require.NoError(t, c.RemoveEdge("a", "b"))
	require.NoError(t, c.AddVertex("z"))

	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasVertex("z"))
	i, ok := c.VertexIndex("z")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}
