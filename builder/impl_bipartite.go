// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are leftPrefix+idFn(i), right IDs rightPrefix+idFn(j).
//   • Left side is inserted first, then right; edges in (i,j) row-major order.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d < min=%d",
				methodCompleteBipartite, n1, n2, minPartitionSize)
		}
		left := make([]string, n1)
		right := make([]string, n2)
		for i := range left {
			left[i] = cfg.leftPrefix + cfg.idFn(i)
			if err := g.AddVertex(left[i]); err != nil {
				return errors.Wrapf(err, "%s: AddVertex(%s)", methodCompleteBipartite, left[i])
			}
		}
		for j := range right {
			right[j] = cfg.rightPrefix + cfg.idFn(j)
			if err := g.AddVertex(right[j]); err != nil {
				return errors.Wrapf(err, "%s: AddVertex(%s)", methodCompleteBipartite, right[j])
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
