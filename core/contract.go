// File: contract.go
// Role: Vertex contraction (merge two vertices into a fresh one).
//
// Determinism:
//   - The merged vertex is appended last; its neighbors are N(u) in order
//     followed by the members of N(v) not already present.
//
// Concurrency:
//   - One write-locked critical section: readers never observe a half-merged graph.

package core

import (
	"strconv"

	"github.com/pkg/errors"
)

// Contract replaces u and v by a single new vertex adjacent to
// (N(u) ∪ N(v)) \ {u, v} and returns the new vertex ID: "u_v", or "u_v#k"
// with the smallest k ≥ 1 such that the label was never used.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is empty.
//   - ErrInvalidEdge: if u == v.
//   - ErrVertexNotFound: if u or v is absent; g is left untouched.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) Contract(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", errors.Wrapf(ErrInvalidEdge, "contract %q with itself", u)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ru, rv := g.recordLocked(u), g.recordLocked(v)
	if ru == nil {
		return "", errors.Wrapf(ErrVertexNotFound, "Contract(%q)", u)
	}
	if rv == nil {
		return "", errors.Wrapf(ErrVertexNotFound, "Contract(%q)", v)
	}

	union := make([]string, 0, ru.adj.Size()+rv.adj.Size())
	seen := map[string]struct{}{u: {}, v: {}}
	for _, nbr := range append(neighborsOf(ru), neighborsOf(rv)...) {
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		union = append(union, nbr)
	}

	label := g.freshLabelLocked(u, v)
	rw := g.addVertexLocked(label)
	g.dropLocked(ru)
	g.dropLocked(rv)
	for _, nbr := range union {
		g.linkLocked(rw, g.recordLocked(nbr))
	}

	return label, nil
}

// freshLabelLocked mints a never-used contraction label. Caller holds a lock.
func (g *Graph) freshLabelLocked(u, v string) string {
	base := u + "_" + v
	if _, taken := g.used[base]; !taken {
		return base
	}
	for k := 1; ; k++ {
		label := base + "#" + strconv.Itoa(k)
		if _, taken := g.used[label]; !taken {
			return label
		}
	}
}

// dropLocked removes rec and its incident edges. Caller holds the write lock.
func (g *Graph) dropLocked(rec *vertexRecord) {
	for _, nbr := range rec.adj.Values() {
		if other := g.recordLocked(nbr.(string)); other != nil {
			other.adj.Remove(rec.id)
		}
		g.edgeCount--
	}
	g.vertices.Remove(rec.id)
}
