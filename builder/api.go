// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs,
//     including vertex and neighbor insertion order.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors to assemble fixtures (e.g. Cycle(5) then FromEdges(...)).
//   - WithIDScheme(OneBasedIDFn) numbers vertices "1".."n" like typical edge lists.
//   - WithSeed(...) freezes RandomSparse.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate early, return sentinel errors and
// preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph" context and returned immediately; no partial
// cleanup is attempted.
//
// Errors:
//   - Wraps constructor errors; branch with errors.Is against builder sentinels
//     (ErrTooFewVertices, ErrInvalidProbability, ...) or core sentinels.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", method, id)
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s-%s)", method, u, v)
	}

	return nil
}
