package bfs

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from start.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrStartVertexNotFound, "%q", start)
	}

	res := &Result{Depth: map[string]int{start: 0}, Parent: map[string]string{}}
	q := linkedlistqueue.New()
	q.Enqueue(queueItem{id: start})

	for !q.Empty() {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		v, _ := q.Dequeue()
		item := v.(queueItem)
		res.Order = append(res.Order, item.id)

		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return res, err
		}
		for _, n := range nbrs {
			if _, seen := res.Depth[n]; seen {
				continue
			}
			res.Depth[n] = item.depth + 1
			res.Parent[n] = item.id
			q.Enqueue(queueItem{id: n, depth: item.depth + 1})
		}
	}

	return res, nil
}

// Components lists the connected components of g. Components appear in the
// order of their first vertex; each lists vertices in BFS order.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
