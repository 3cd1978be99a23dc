// SPDX-License-Identifier: MIT
// Package: lvreduce/coloring
//
// dsatur.go — DSatur with a lazy gods priority queue.

package coloring

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// ErrImproperColoring is returned by Verify when two adjacent vertices share
// a color or a vertex is left uncolored.
var ErrImproperColoring = errors.New("coloring: improper coloring")

// Coloring maps vertex ID to color number (≥ 1).
type Coloring map[string]int

// NumColors returns the number of distinct colors used.
func (c Coloring) NumColors() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// Verify checks that c colors every vertex of g with a positive color and that
// no edge joins two vertices of the same color.
func (c Coloring) Verify(g *core.Graph) error {
	for _, id := range g.Vertices() {
		if c[id] < 1 {
			return errors.Wrapf(ErrImproperColoring, "vertex %s uncolored", id)
		}
	}
	for _, e := range g.Edges() {
		if c[e.From] == c[e.To] {
			return errors.Wrapf(ErrImproperColoring, "edge %s-%s both color %d", e.From, e.To, c[e.From])
		}
	}

	return nil
}

// entry is one queue snapshot of a vertex's priority.
type entry struct {
	id  string
	sat int
	deg int
}

// byPriority orders entries so the binary min-heap yields the best vertex
// first: saturation desc, remaining degree desc, ID asc.
func byPriority(a, b interface{}) int {
	x, y := a.(entry), b.(entry)
	switch {
	case x.sat != y.sat:
		if x.sat > y.sat {
			return -1
		}
		return 1
	case x.deg != y.deg:
		if x.deg > y.deg {
			return -1
		}
		return 1
	}

	return core.CompareIDs(x.id, y.id)
}

// DSatur colors g and returns the resulting Coloring.
//
// Errors:
//   - core.ErrEmptyGraph if g is nil or has no vertices.
func DSatur(g *core.Graph) (Coloring, error) {
	if err := core.RequireVertices(g); err != nil {
		return nil, errors.Wrap(err, "DSatur")
	}

	ids := g.Vertices()
	adj := make(map[string][]string, len(ids))
	remaining := make(map[string]int, len(ids))
	neighborColors := make(map[string]map[int]struct{}, len(ids))
	queue := priorityqueue.NewWith(byPriority)

	for _, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, errors.Wrapf(err, "DSatur: neighbors of %s", id)
		}
		adj[id] = nbrs
		remaining[id] = len(nbrs)
		neighborColors[id] = make(map[int]struct{})
		queue.Enqueue(entry{id: id, deg: len(nbrs)})
	}

	colors := make(Coloring, len(ids))
	for len(colors) < len(ids) {
		top, ok := queue.Dequeue()
		if !ok {
			break
		}
		e := top.(entry)
		if _, done := colors[e.id]; done {
			continue
		}
		if e.sat != len(neighborColors[e.id]) || e.deg != remaining[e.id] {
			continue // superseded by a later push
		}

		color := smallestFree(neighborColors[e.id])
		colors[e.id] = color

		for _, w := range adj[e.id] {
			if _, done := colors[w]; done {
				continue
			}
			neighborColors[w][color] = struct{}{}
			remaining[w]--
			queue.Enqueue(entry{id: w, sat: len(neighborColors[w]), deg: remaining[w]})
		}
	}

	return colors, nil
}

// smallestFree returns the least positive integer not in used.
func smallestFree(used map[int]struct{}) int {
	color := 1
	for {
		if _, taken := used[color]; !taken {
			return color
		}
		color++
	}
}
