// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeStrict/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() walks vertices in insertion order and, per vertex, its neighbors in
//     insertion order, reporting each unordered pair once (first endpoint seen wins).
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
//
// AI-HINT (file):
//   - AddEdge(u,u) is always ErrInvalidEdge: graphs here are simple.
//   - Adding an existing edge is a no-op, so edge lists with repeats are accepted.

package core

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"
)

// AddEdge connects u and v, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Reject empty IDs (ErrEmptyVertexID) and u == v (ErrInvalidEdge).
//   - Stage 2: Ensure both endpoints, then insert v into N(u) and u into N(v).
//
// Behavior highlights:
//   - Idempotent for an existing edge: no error, no count change, no reordering.
//
// Errors:
//   - ErrEmptyVertexID, ErrInvalidEdge.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return errors.Wrapf(ErrInvalidEdge, "self-loop on %q", u)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.linkLocked(g.addVertexLocked(u), g.addVertexLocked(v))

	return nil
}

// AddEdgeStrict connects u and v only if both already exist.
//
// Errors:
//   - ErrEmptyVertexID on empty IDs.
//   - ErrInvalidEdge on u == v or when either endpoint is absent.
func (g *Graph) AddEdgeStrict(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return errors.Wrapf(ErrInvalidEdge, "self-loop on %q", u)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	ru, rv := g.recordLocked(u), g.recordLocked(v)
	if ru == nil {
		return errors.Wrapf(ErrInvalidEdge, "endpoint %q is not a vertex", u)
	}
	if rv == nil {
		return errors.Wrapf(ErrInvalidEdge, "endpoint %q is not a vertex", v)
	}
	g.linkLocked(ru, rv)

	return nil
}

// RemoveEdge deletes the edge {u, v}.
//
// Errors:
//   - ErrEdgeNotFound: if the edge (or an endpoint) is absent.
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	ru, rv := g.recordLocked(u), g.recordLocked(v)
	if ru == nil || rv == nil || !ru.adj.Contains(v) {
		return errors.Wrapf(ErrEdgeNotFound, "RemoveEdge(%q, %q)", u, v)
	}
	ru.adj.Remove(v)
	rv.adj.Remove(u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge exactly once, in deterministic order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	done := make(map[string]struct{}, g.vertices.Size())
	for _, id := range g.verticesLocked() {
		rec := g.recordLocked(id)
		for _, nbr := range neighborsOf(rec) {
			if _, seen := done[nbr]; seen {
				continue
			}
			out = append(out, Edge{From: id, To: nbr})
		}
		done[id] = struct{}{}
	}

	return out
}

// linkLocked inserts the symmetric adjacency for a new edge. Caller holds the
// write lock and guarantees ru != rv.
func (g *Graph) linkLocked(ru, rv *vertexRecord) {
	if ru.adj.Contains(rv.id) {
		return
	}
	ru.adj.Add(rv.id)
	rv.adj.Add(ru.id)
	g.edgeCount++
}

// hasEdgeLocked is HasEdge without locking.
func (g *Graph) hasEdgeLocked(u, v string) bool {
	rec := g.recordLocked(u)

	return rec != nil && rec.adj.Contains(v)
}

func newNeighborSet() *linkedhashset.Set {
	return linkedhashset.New()
}
