package dfs

import "github.com/pkg/errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current path.
	Black        // Black: the vertex and its subtree are done.
)

// Unbounded disables the edge-count cutoff of SimplePaths.
const Unbounded = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that a path endpoint does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrBadCutoff indicates a cutoff of zero edges.
	ErrBadCutoff = errors.New("dfs: cutoff must be positive or Unbounded")
)

// PathFunc receives each simple path found by WalkSimplePaths. The slice is
// owned by the walker and reused; copy it to keep it. Return false to stop.
type PathFunc func(path []string) bool
