package analysis

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// Input is one graph description. With VertexCount > 0 the vertices are
// "1".."VertexCount" (isolated ones included) and every endpoint must be one
// of them.
type Input struct {
	Edges       []core.Edge
	VertexCount int
}

// Build creates the graph described by in. Edges are added in order;
// repeated edges are accepted once.
//
// Errors:
//   - core.ErrInvalidEdge: u = v, or an endpoint outside 1..VertexCount.
//   - core.ErrEmptyVertexID: an empty endpoint label.
func Build(in Input) (*core.Graph, error) {
	if in.VertexCount < 0 {
		return nil, errors.Wrapf(core.ErrInvalidEdge, "vertex count %d", in.VertexCount)
	}
	g := core.NewGraph()
	for i := 1; i <= in.VertexCount; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}

	add := g.AddEdge
	if in.VertexCount > 0 {
		add = g.AddEdgeStrict
	}
	for i, e := range in.Edges {
		if e.From == e.To {
			return nil, errors.Wrapf(core.ErrInvalidEdge, "edge %d (%s,%s): loop", i, e.From, e.To)
		}
		if err := add(e.From, e.To); err != nil {
			return nil, errors.Wrapf(err, "edge %d (%s,%s)", i, e.From, e.To)
		}
	}

	return g, nil
}
