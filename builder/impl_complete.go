// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges (i,j) for i<j in lexicographic index order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
