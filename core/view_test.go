package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/core"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestClone_Independent ensures mutating a clone never touches the source.
func TestClone_Independent(t *testing.T) {
	g := square(t)
	c := g.Clone()

	require.NoError(t, c.RemoveVertex("A"))
	require.NoError(t, c.AddEdge("B", "D"))

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasEdge("B", "D"))
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())
	assert.True(t, c.WasUsed("A"))
}

// TestInducedSubgraph keeps exactly the edges inside the kept set.
func TestInducedSubgraph(t *testing.T) {
	g := square(t)
	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})

	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.True(t, sub.HasEdge("B", "C"))
	assert.False(t, sub.HasEdge("A", "C"))

	// Independent copy.
	require.NoError(t, sub.AddEdge("A", "C"))
	assert.False(t, g.HasEdge("A", "C"))
}

// TestComplement covers the complement of C4 (two diagonals) and of K3 (empty).
func TestComplement(t *testing.T) {
	comp := core.Complement(square(t))
	assert.Equal(t, []string{"A", "B", "C", "D"}, comp.Vertices())
	assert.Equal(t, 2, comp.EdgeCount())
	assert.True(t, comp.HasEdge("A", "C"))
	assert.True(t, comp.HasEdge("B", "D"))

	k3 := core.NewGraph()
	require.NoError(t, k3.AddEdge("1", "2"))
	require.NoError(t, k3.AddEdge("2", "3"))
	require.NoError(t, k3.AddEdge("3", "1"))
	assert.Equal(t, 0, core.Complement(k3).EdgeCount())
	assert.Equal(t, 3, core.Complement(k3).VertexCount())
}

// TestRequireVertices reports ErrEmptyGraph for nil and empty graphs.
func TestRequireVertices(t *testing.T) {
	assert.ErrorIs(t, core.RequireVertices(nil), core.ErrEmptyGraph)
	assert.ErrorIs(t, core.RequireVertices(core.NewGraph()), core.ErrEmptyGraph)
	assert.NoError(t, core.RequireVertices(square(t)))
}
