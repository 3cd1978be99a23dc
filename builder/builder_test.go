package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/builder"
)

// TestTopologies checks vertex/edge counts of every deterministic constructor.
func TestTopologies(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"Cycle5", builder.Cycle(5), 5, 5},
		{"Path4", builder.Path(4), 4, 3},
		{"Complete5", builder.Complete(5), 5, 10},
		{"K23", builder.CompleteBipartite(2, 3), 5, 6},
		{"Star4", builder.Star(4), 4, 3},
		{"Wheel6", builder.Wheel(6), 6, 10},
		{"Edges", builder.FromEdges([2]string{"x", "y"}, [2]string{"y", "z"}), 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

// TestTooFewVertices validates the size sentinels.
func TestTooFewVertices(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Cycle(2), builder.Path(1), builder.Complete(0),
		builder.CompleteBipartite(0, 3), builder.Star(1), builder.Wheel(3),
		builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

// TestOneBasedIDs numbers vertices from 1 in insertion order.
func TestOneBasedIDs(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithIDScheme(builder.OneBasedIDFn)}, builder.Cycle(3))
	assert.Equal(t, []string{"1", "2", "3"}, g.Vertices())
	assert.True(t, g.HasEdge("3", "1"))
}

// TestBipartitePrefixes honors WithPartitionPrefix.
func TestBipartitePrefixes(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithPartitionPrefix("u", "w")}, builder.CompleteBipartite(1, 2))
	assert.Equal(t, []string{"u0", "w0", "w1"}, g.Vertices())
}

// TestRandomSparse covers RNG requirements and determinism.
func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	full := builder.MustBuild(nil, builder.RandomSparse(4, 1))
	assert.Equal(t, 6, full.EdgeCount())

	a := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	b := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(12, 0.3))
	assert.Equal(t, a.Edges(), b.Edges())
}

// TestNilConstructor is rejected with ErrConstructFailed.
func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
