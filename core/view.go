// File: view.go
// Role: Derived graphs (clone, induced subgraph, complement).
// Determinism:
//   - Derived graphs keep the source's vertex order and ordinals, and each
//     vertex's neighbor order restricted to the kept vertices.
// Concurrency:
//   - Read lock on the source; the result is a fresh, independent graph.
// AI-HINT (file):
//   - Nothing here mutates the input Graph, and mutating a result never
//     touches the source.

package core

// Clone returns a deep, independent copy of g, including the set of IDs that
// were ever used (so contraction labels stay collision-free on the copy).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph containing exactly the vertices v with
// keep[v] == true and every edge of g whose endpoints are both kept. A nil
// keep map keeps everything.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	// AI-HINT: Adjacency order is filtered, not rebuilt, so cycle bases over
	//          the subgraph walk neighbors exactly as the source would.
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := newDerived(g)
	kept := func(id string) bool { return keep == nil || keep[id] }

	var rec *vertexRecord
	for _, id := range g.verticesLocked() {
		if !kept(id) {
			continue
		}
		rec = g.recordLocked(id)
		out.vertices.Put(id, &vertexRecord{id: id, ordinal: rec.ordinal, adj: newNeighborSet()})
	}

	degreeSum := 0
	for _, id := range g.verticesLocked() {
		if !kept(id) {
			continue
		}
		dst := out.recordLocked(id)
		for _, nbr := range neighborsOf(g.recordLocked(id)) {
			if kept(nbr) {
				dst.adj.Add(nbr)
				degreeSum++
			}
		}
	}
	out.edgeCount = degreeSum / 2

	return out
}

// Complement returns a new Graph on the same vertices (same order) whose
// edges are exactly the non-edges of g. No self-loops are produced.
//
// Edges are inserted scanning u over Vertices() and, for each u, w over
// Vertices(); neighbor order in the result follows that scan.
//
// Complexity: O(V²). Concurrency: read lock only on source.
func Complement(g *Graph) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := newDerived(g)
	ids := g.verticesLocked()
	for _, id := range ids {
		out.vertices.Put(id, &vertexRecord{id: id, ordinal: g.recordLocked(id).ordinal, adj: newNeighborSet()})
	}
	for _, u := range ids {
		src := g.recordLocked(u)
		for _, w := range ids {
			if u == w || src.adj.Contains(w) {
				continue
			}
			out.linkLocked(out.recordLocked(u), out.recordLocked(w))
		}
	}

	return out
}

// newDerived allocates an empty graph carrying g's ordinal counter and used-ID
// history. Caller holds g's read lock.
func newDerived(g *Graph) *Graph {
	out := NewGraph()
	out.nextOrdinal = g.nextOrdinal
	for id := range g.used {
		out.used[id] = struct{}{}
	}

	return out
}
