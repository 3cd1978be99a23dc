package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/bfs"
	"github.com/katalvlaran/lvreduce/builder"
	"github.com/katalvlaran/lvreduce/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_Path(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(5)) // 0-1-2-3-4
	res, err := bfs.BFS(g, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3", "0", "4"}, res.Order)
	assert.Equal(t, 2, res.Depth["4"])
	assert.Equal(t, "3", res.Parent["4"])
	_, hasParent := res.Parent["2"]
	assert.False(t, hasParent)
}

func TestBFS_Cancel(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Components(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("3", "4"))
	require.NoError(t, g.AddEdge("4", "5"))
	require.NoError(t, g.AddVertex("6"))

	comps, err := bfs.Components(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4", "5"}, {"6"}}, comps)

	_, err = bfs.Components(context.Background(), nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}
