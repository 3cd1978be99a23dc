// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4: a ring C_{n-1} on idFn(0..n-2) plus hub CenterVertexID.
//   • Ring edges first (as Cycle), then spokes in ring order.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodWheel, n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return errors.Wrap(err, methodWheel)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
