package chordal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/builder"
	"github.com/katalvlaran/lvreduce/chordal"
	"github.com/katalvlaran/lvreduce/core"
)

func TestIsChordal_SquareNamesCycle(t *testing.T) {
	v, err := chordal.IsChordal(builder.MustBuild(nil, builder.Cycle(4)))
	require.NoError(t, err)

	assert.False(t, v.Chordal)
	assert.Equal(t, [][]string{{"2", "1", "0", "3"}}, v.Violations)
	require.Len(t, v.Messages, 1)
	assert.Contains(t, v.Messages[0], "[2 1 0 3]")
}

func TestIsChordal_Complete(t *testing.T) {
	for n := 1; n <= 7; n++ {
		v, err := chordal.IsChordal(builder.MustBuild(nil, builder.Complete(n)))
		require.NoError(t, err)
		assert.True(t, v.Chordal, "K%d", n)
		assert.Empty(t, v.Violations)
		assert.Equal(t, []string{"graph is chordal"}, v.Messages)
	}
}

func TestIsChordal_ForestAndTriangle(t *testing.T) {
	for _, g := range []*core.Graph{
		builder.MustBuild(nil, builder.Path(6)),
		builder.MustBuild(nil, builder.Star(5)),
		builder.MustBuild(nil, builder.Cycle(3)),
	} {
		v, err := chordal.IsChordal(g)
		require.NoError(t, err)
		assert.True(t, v.Chordal)
	}
}

func TestIsChordal_Empty(t *testing.T) {
	_, err := chordal.IsChordal(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestHasDiagonal(t *testing.T) {
	square := []string{"0", "1", "2", "3"}
	g := builder.MustBuild(nil, builder.Cycle(4))
	assert.False(t, chordal.HasDiagonal(g, square), "closing edge is not a chord")

	require.NoError(t, g.AddEdge("0", "2"))
	assert.True(t, chordal.HasDiagonal(g, square))

	tri := builder.MustBuild(nil, builder.Cycle(3))
	assert.False(t, chordal.HasDiagonal(tri, []string{"0", "1", "2"}))
}
