// Package builder provides "functional-options"-style constructors for the
// small, well-known graphs lvreduce is tested and demonstrated on.
//
// The package offers:
//
//   - BuildGraph(bopts, cons...): one orchestrator applying Constructors in order.
//   - Topologies: Cycle, Path, Complete, CompleteBipartite, Star, Wheel,
//     RandomSparse, FromEdges.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), OneBasedIDFn
//     ("1","2",…), SymbolIDFn ("A","B",…).
//   - Options: WithIDScheme, WithSeed, WithRand, WithPartitionPrefix.
//
// Guarantees:
//
//   - Deterministic: the same options and constructor order produce the same
//     graph, including vertex and neighbor insertion order, which the cycle
//     basis and DSatur tie-breaks observe.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices, ...) wrapped
//     with method context.
package builder
