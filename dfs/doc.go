// Package dfs implements the depth-first searches lvreduce analyses are built
// on, over an undirected core.Graph.
//
// What:
//
//   - SimplePaths / WalkSimplePaths: enumerate every simple path between two
//     vertices, optionally bounded by a cutoff on the number of edges. The
//     walk visits neighbors in core insertion order and can stop early.
//   - CycleBasis: a fundamental cycle basis built from spanning trees of each
//     connected component. Roots and neighbor order are deterministic, so the
//     same graph always yields the same basis.
//
// Why:
//   - Friend-pair detection needs cutoff-bounded path enumeration, then an
//     unbounded enumeration inside a tiny induced subgraph.
//   - Perfection and chordality checks inspect the cycles of a basis.
//
// Complexity:
//
//   - SimplePaths:  exponential in general; O(d^cutoff) with a cutoff.
//   - CycleBasis:   Time O(V + E + Σ|C|), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  source or target vertex not in graph
//   - ErrBadCutoff            cutoff == 0 (no path can have zero edges)
package dfs
