// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// impl_edges.go — FromEdges constructor: literal edge lists as fixtures.

package builder

import "github.com/katalvlaran/lvreduce/core"

const methodFromEdges = "FromEdges"

// FromEdges returns a Constructor that adds each pair as an edge, in order.
// IDs are used verbatim (cfg.idFn is not applied).
func FromEdges(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(g, methodFromEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
