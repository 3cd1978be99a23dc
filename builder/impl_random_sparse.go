// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • For 0<p<1 an RNG is required (WithSeed/WithRand), else ErrNeedRandSource.
//   • Pairs (i,j), i<j, are drawn in row-major order: one rng.Float64() per pair.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds a random simple graph where
// each pair is joined independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d",
				methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				methodRandomSparse, p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var join bool
				switch p {
				case probMin:
					join = false
				case probMax:
					join = true
				default:
					join = cfg.rng.Float64() < p
				}
				if !join {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
