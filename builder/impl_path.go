// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i -> i+1 for i=0..n-2.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
