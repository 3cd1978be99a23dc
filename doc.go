// Package lvreduce colors, reduces and structurally checks simple undirected
// graphs.
//
// What's inside
//
//	core/       — insertion-ordered, thread-safe Graph with vertex contraction
//	builder/    — deterministic topologies (cycle, path, wheel, …) and FromEdges
//	dfs/        — bounded simple paths and the fundamental cycle basis
//	bfs/        — breadth-first search and connected components
//	coloring/   — DSatur coloring and the display palette
//	friends/    — friend-pair detection and the step-wise Reducer
//	perfect/    — odd hole / odd antihole search
//	chordal/    — chordless basis cycles of length ≥ 4
//	planarity/  — delegation to an external planarity tester
//	analysis/   — edge-list driven facade, Sessions and metrics hooks
//	edgelist/   — "1,9 ; 2,4" text form and YAML documents
//	converters/ — Graphviz DOT export (directory converterts/)
//	config/     — YAML settings, validation and hot reload
//	metrics/    — Prometheus collectors
//	cmd/lvreduce — the command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	(1,3) and (2,4) are friend pairs: contracting both leaves the single
//	edge 1_3 ── 2_4, which two colors suffice for.
//
//	go install github.com/katalvlaran/lvreduce/cmd/lvreduce@latest
package lvreduce
