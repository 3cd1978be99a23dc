package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/core"
)

func TestGraph_Contract(t *testing.T) {
	g := core.NewGraph()
	// a - u - b, v - c, v - b, u and v not adjacent.
	for _, e := range [][2]string{{"a", "u"}, {"u", "b"}, {"v", "c"}, {"v", "b"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	w, err := g.Contract("u", "v")
	require.NoError(t, err)
	assert.Equal(t, "u_v", w)
	assert.False(t, g.HasVertex("u"))
	assert.False(t, g.HasVertex("v"))

	nbrs, err := g.NeighborIDs(w)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nbrs)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"a", "b", "c", "u_v"}, g.Vertices())
}

func TestGraph_ContractAdjacentDropsJoiningEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("x", "y"))
	require.NoError(t, g.AddEdge("y", "z"))

	w, err := g.Contract("x", "y")
	require.NoError(t, err)
	assert.True(t, g.HasEdge(w, "z"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_ContractFreshLabels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("2"))
	require.NoError(t, g.AddVertex("1_2"))
	require.NoError(t, g.RemoveVertex("1_2"))

	w, err := g.Contract("1", "2")
	require.NoError(t, err)
	assert.Equal(t, "1_2#1", w)
	assert.True(t, g.WasUsed("1"))
}

func TestGraph_ContractErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))

	_, err := g.Contract("a", "missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Equal(t, 2, g.VertexCount(), "graph untouched")

	_, err = g.Contract("a", "a")
	assert.ErrorIs(t, err, core.ErrInvalidEdge)

	_, err = g.Contract("", "a")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}
