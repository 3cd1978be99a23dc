// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)

	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.True(t, g.WasUsed(VertexA), "removed IDs stay in the used set")
}

// TestGraph_AddEdge covers loops, auto-creation, idempotence and symmetry.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()

	err := g.AddEdge(VertexA, VertexA)
	assert.True(t, errors.Is(err, core.ErrInvalidEdge), "self-loop must be ErrInvalidEdge, got %v", err)
	assert.ErrorIs(t, g.AddEdge(VertexA, VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddEdge(VertexA, VertexB))
	assert.True(t, g.HasVertex(VertexA))
	assert.True(t, g.HasVertex(VertexB))
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))

	require.NoError(t, g.AddEdge(VertexB, VertexA))
	assert.Equal(t, 1, g.EdgeCount(), "repeated edge is a no-op")
}

// TestGraph_AddEdgeStrict rejects edges to vertices that do not exist.
func TestGraph_AddEdgeStrict(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	assert.ErrorIs(t, g.AddEdgeStrict(VertexA, VertexB), core.ErrInvalidEdge)
	assert.False(t, g.HasVertex(VertexB))

	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddEdgeStrict(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexA, VertexB))
}

// TestGraph_RemoveVertexDropsIncidentEdges checks adjacency symmetry after removal.
func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexC, VertexA))

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, 1, g.EdgeCount())

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexC}, nbrs)

	_, err = g.NeighborIDs(VertexB)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_RemoveEdge checks both directions disappear.
func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))

	require.NoError(t, g.RemoveEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
}

// TestGraph_InsertionOrder anchors the ordering contract of Vertices/NeighborIDs/Edges.
func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("3", "1"))
	require.NoError(t, g.AddEdge("3", "2"))
	require.NoError(t, g.AddEdge("1", "2"))

	assert.Equal(t, []string{"3", "1", "2"}, g.Vertices())

	nbrs, err := g.NeighborIDs("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, nbrs)

	assert.Equal(t, []core.Edge{{From: "3", To: "1"}, {From: "3", To: "2"}, {From: "1", To: "2"}}, g.Edges())

	o3, ok := g.Ordinal("3")
	require.True(t, ok)
	o2, _ := g.Ordinal("2")
	assert.Less(t, o3, o2)

	deg, err := g.Degree("3")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

// TestCompareIDs covers numeric, textual and mixed comparisons.
func TestCompareIDs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"7", "7", 0},
		{"1", "A", -1},
		{"A", "1", 1},
		{"A", "B", -1},
		{"1_2", "1_3", -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.CompareIDs(tc.a, tc.b), "CompareIDs(%q,%q)", tc.a, tc.b)
	}
}
