// Package coloring implements the DSatur greedy vertex coloring over a
// core.Graph, plus a small display palette.
//
// What
//
//   - DSatur repeatedly picks the uncolored vertex with the highest saturation
//     (number of distinct colors among its neighbors), breaking ties by the
//     highest remaining uncolored degree and then by the smallest ID
//     (core.CompareIDs), and assigns it the smallest positive color not used
//     by a neighbor.
//   - Colors start at 1. Every vertex, isolated ones included, is colored.
//
// Determinism
//
//	The priority order is total, so the same graph always yields the same
//	Coloring regardless of map iteration order.
//
// Queue
//
//	The priority queue is lazy: a saturation or degree change pushes a fresh
//	entry and the outdated one is dropped when it surfaces.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log(V + E))
//   - Memory: O(V + E) queue entries in the worst case.
package coloring
