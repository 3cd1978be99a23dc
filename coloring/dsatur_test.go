package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/builder"
	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/core"
)

func TestDSatur_EmptyGraph(t *testing.T) {
	_, err := coloring.DSatur(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = coloring.DSatur(nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestDSatur_Pentagon(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(5))
	c, err := coloring.DSatur(g)
	require.NoError(t, err)
	require.NoError(t, c.Verify(g))

	assert.Equal(t, coloring.Coloring{"0": 1, "1": 2, "2": 1, "3": 2, "4": 3}, c)
	assert.Equal(t, 3, c.NumColors())
}

func TestDSatur_KnownChromatic(t *testing.T) {
	cases := []struct {
		name   string
		con    builder.Constructor
		colors int
	}{
		{"K1", builder.Complete(1), 1},
		{"K6", builder.Complete(6), 6},
		{"K33", builder.CompleteBipartite(3, 3), 2},
		{"P5", builder.Path(5), 2},
		{"C6", builder.Cycle(6), 2},
		{"Star", builder.Star(7), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := builder.MustBuild(nil, tc.con)
			c, err := coloring.DSatur(g)
			require.NoError(t, err)
			require.NoError(t, c.Verify(g))
			assert.Equal(t, tc.colors, c.NumColors())
		})
	}
}

func TestDSatur_IsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("1", "2"))

	c, err := coloring.DSatur(g)
	require.NoError(t, err)
	require.NoError(t, c.Verify(g))
	assert.Equal(t, 1, c["3"])
}

func TestDSatur_RandomValidAndDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		a, err := coloring.DSatur(g)
		require.NoError(t, err)
		require.NoError(t, a.Verify(g))

		b, err := coloring.DSatur(g.Clone())
		require.NoError(t, err)
		assert.Equal(t, a, b, "seed %d", seed)
	}
}

func TestColoring_VerifyRejects(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(2))
	assert.ErrorIs(t, coloring.Coloring{"0": 1, "1": 1}.Verify(g), coloring.ErrImproperColoring)
	assert.ErrorIs(t, coloring.Coloring{"0": 1}.Verify(g), coloring.ErrImproperColoring)
}

func TestPalette_Hex(t *testing.T) {
	p := coloring.DefaultPalette
	assert.Equal(t, "#CA3C66", p.Hex(1))
	assert.Equal(t, "#8A97FE", p.Hex(7))
	assert.Equal(t, "#CA3C66", p.Hex(8))
	assert.Equal(t, "", p.Hex(0))
	assert.Equal(t, "", coloring.Palette(nil).Hex(1))
}
