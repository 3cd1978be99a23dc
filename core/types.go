// SPDX-License-Identifier: MIT
// Package core defines the simple undirected Graph shared by every analysis in
// lvreduce, together with its sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrInvalidEdge    - self-loop or endpoint outside the declared vertex set.
//	ErrEmptyGraph     - operation requires at least one vertex.
package core

import (
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates a malformed edge: a self-loop, or an endpoint
	// that is absent where auto-creation is not allowed.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrEmptyGraph indicates an operation that needs at least one vertex was
	// invoked on a graph without vertices.
	ErrEmptyGraph = errors.New("core: graph is empty")
)

// Edge is an unordered pair of distinct vertex IDs. From/To only record the
// order in which the pair is reported by Edges().
type Edge struct {
	From string
	To   string
}

// vertexRecord is the per-vertex storage: insertion ordinal plus the
// insertion-ordered neighbor set.
type vertexRecord struct {
	id      string
	ordinal int
	adj     *linkedhashset.Set // neighbor IDs (string), insertion order
}

// Graph is a simple undirected graph: no self-loops, no parallel edges,
// symmetric adjacency.
//
// Vertices and each vertex's neighbors iterate in insertion order. Algorithms
// built on top (cycle basis, DSatur tie-breaks, friend-pair scans) rely on this
// order to be reproducible, so it is never left to a Go map.
//
// mu guards every field; each public method is a single critical section.
type Graph struct {
	mu sync.RWMutex

	// vertices maps ID -> *vertexRecord in insertion order.
	vertices *linkedhashmap.Map

	edgeCount   int
	nextOrdinal int

	// used remembers every ID that ever lived in this graph, so synthetic
	// IDs minted later never collide with a retired one.
	used map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: linkedhashmap.New(),
		used:     make(map[string]struct{}),
	}
}
