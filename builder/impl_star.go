// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (center + at least one leaf).
//   • Center is CenterVertexID; leaves are idFn(0..n-2).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarNodes)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", methodStar, CenterVertexID)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
