// Package bfs provides breadth-first search over a core.Graph: visit order,
// hop distances and parent links from one start vertex, and the connected
// components of the whole graph.
//
// Determinism
//
//	Neighbors are enqueued in core neighbor order (insertion order), so the
//	visit sequence and the component listing are reproducible run to run.
//
// Complexity
//
//	BFS and Components are O(V + E) time and O(V) space.
//
// Errors
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start ID is absent
//   - ctx.Err()               the search was cancelled
package bfs
