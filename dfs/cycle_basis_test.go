package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/dfs"
)

// TestCycleBasis_NilGraph verifies the nil-graph sentinel.
func TestCycleBasis_NilGraph(t *testing.T) {
	cycles, err := dfs.CycleBasis(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	assert.Nil(t, cycles)
}

// TestCycleBasis_Tree has no cycles.
func TestCycleBasis_Tree(t *testing.T) {
	g := buildGraph(t, [][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}})

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

// TestCycleBasis_Pentagon pins the exact cycle produced for C5.
func TestCycleBasis_Pentagon(t *testing.T) {
	g := buildGraph(t, [][2]string{{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "1"}})

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"4", "3", "2", "1", "5"}}, cycles)
}

// TestCycleBasis_Size checks |basis| = E - V + components on a disconnected graph.
func TestCycleBasis_Size(t *testing.T) {
	g := buildGraph(t, [][2]string{
		// K4 on A..D: 6 - 4 + 1 = 3 cycles.
		{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"},
		// Triangle X, Y, Z: 1 cycle.
		{"X", "Y"}, {"Y", "Z"}, {"Z", "X"},
	})

	cycles, err := dfs.CycleBasis(g)
	require.NoError(t, err)
	assert.Len(t, cycles, 4)
	for _, c := range cycles {
		assert.Len(t, c, 3, "every K4/K3 basis cycle is a triangle: %v", c)
		seen := map[string]bool{}
		for _, id := range c {
			seen[id] = true
		}
		assert.Len(t, seen, len(c), "cycle vertices are distinct: %v", c)
		for i := range c {
			assert.True(t, g.HasEdge(c[i], c[(i+1)%len(c)]), "consecutive vertices adjacent in %v", c)
		}
	}
}
