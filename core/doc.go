// Package core provides the simple undirected Graph that every lvreduce
// analysis operates on: DSatur coloring, friend-pair contraction, perfection
// and chordality checks.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, no self-loops, no parallel edges.
//   - Vertices are string IDs; integer labels are stored as decimal text.
//   - Vertex and neighbor iteration is insertion order (gods linkedhashmap /
//     linkedhashset), never Go map order, so every algorithm is reproducible.
//   - Every ID ever inserted is remembered (WasUsed), so synthetic IDs minted
//     by contraction never reuse a retired label.
//   - One sync.RWMutex guards the graph; each public method is one critical
//     section.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	RemoveVertex(id string) error       // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(u, v string) error          // auto-creates endpoints
//	AddEdgeStrict(u, v string) error    // endpoints must exist
//	RemoveEdge(u, v string) error
//	HasEdge(u, v string) bool
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // insertion order
//	Vertices() []string                      // insertion order
//	Edges() []Edge
//	Degree(id string) (int, error)
//	VertexCount(), EdgeCount() int
//
//	// Derived graphs (independent copies)
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//	Complement(g) *Graph
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrEdgeNotFound   – missing edge
//	ErrInvalidEdge    – self-loop, or absent endpoint in strict mode
//	ErrEmptyGraph     – analysis invoked on a graph without vertices
package core
