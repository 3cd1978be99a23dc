// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - Ordinal() exposes the insertion position used for stable tie-breaks.
//
// Concurrency:
//   - Every method is one critical section under g.mu.
//
// AI-Hints (file):
//   - Vertices() is the enumeration surface every analysis iterates; do not sort it.
//   - RemoveVertex() keeps the ID in the used set: WasUsed(id) stays true.
package core

import "github.com/pkg/errors"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register a record with the next ordinal.
//
// Inputs:
//   - id: vertex identifier; must be non-empty.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.recordLocked(id) != nil
}

// WasUsed reports whether id is, or has ever been, a vertex of this graph.
// Complexity: O(1).
func (g *Graph) WasUsed(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.used[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate the ID and presence.
//   - Stage 2: Drop id from every neighbor's set, then drop the record.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(deg(v)·d) where d bounds neighbor-set removal cost, Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := g.recordLocked(id)
	if rec == nil {
		return errors.Wrapf(ErrVertexNotFound, "RemoveVertex(%q)", id)
	}
	g.dropLocked(rec)

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.verticesLocked()
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Size()
}

// Ordinal returns the insertion position of id. Ordinals grow monotonically
// and are never reused, so they give a stable order even after removals.
func (g *Graph) Ordinal(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec := g.recordLocked(id)
	if rec == nil {
		return 0, false
	}

	return rec.ordinal, true
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec := g.recordLocked(id)
	if rec == nil {
		return 0, errors.Wrapf(ErrVertexNotFound, "Degree(%q)", id)
	}

	return rec.adj.Size(), nil
}

// NeighborIDs returns the neighbors of id in the order their edges were added.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(v)).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	rec := g.recordLocked(id)
	if rec == nil {
		return nil, errors.Wrapf(ErrVertexNotFound, "NeighborIDs(%q)", id)
	}

	return neighborsOf(rec), nil
}

// addVertexLocked registers id if absent and returns its record.
// Caller holds the write lock.
func (g *Graph) addVertexLocked(id string) *vertexRecord {
	if rec := g.recordLocked(id); rec != nil {
		return rec
	}
	rec := &vertexRecord{id: id, ordinal: g.nextOrdinal, adj: newNeighborSet()}
	g.nextOrdinal++
	g.vertices.Put(id, rec)
	g.used[id] = struct{}{}

	return rec
}

// recordLocked returns the record for id or nil. Caller holds a lock.
func (g *Graph) recordLocked(id string) *vertexRecord {
	v, ok := g.vertices.Get(id)
	if !ok {
		return nil
	}

	return v.(*vertexRecord)
}

// verticesLocked lists IDs in insertion order. Caller holds a lock.
func (g *Graph) verticesLocked() []string {
	keys := g.vertices.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.(string)
	}

	return ids
}

// neighborsOf copies a record's neighbor set into a string slice.
func neighborsOf(rec *vertexRecord) []string {
	vals := rec.adj.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}

	return out
}
