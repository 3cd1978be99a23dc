// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
