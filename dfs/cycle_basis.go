// Package dfs: fundamental cycle basis of an undirected core.Graph.
//
// CycleBasis grows a spanning tree per connected component with an explicit
// stack (last-in first-out, so cycles close early) and turns every non-tree
// edge into one fundamental cycle. The root of each component is the most
// recently inserted vertex not yet covered; neighbors are scanned in core
// insertion order. Together this makes the basis a pure function of the
// graph's insertion history.
//
// Complexity:
//
//   - Time:   O(V + E + Σ|C|)  (Σ|C| = total length of the returned cycles)
//   - Memory: O(V)
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// CycleBasis returns a list of cycles forming a basis of the cycle space of g.
// Each cycle lists its vertices once; the closing edge back to cycle[0] is
// implicit. A simple graph has E - V + (#components) basis cycles.
//
// A nil graph yields (nil, ErrGraphNil).
func CycleBasis(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts)) // Black once its component is done
	var cycles [][]string

	// Components are rooted at the latest-inserted uncovered vertex.
	for r := len(verts) - 1; r >= 0; r-- {
		root := verts[r]
		if state[root] == Black {
			continue
		}
		comp, err := componentCycles(g, root, &cycles)
		if err != nil {
			return nil, errors.Wrap(err, "dfs: CycleBasis")
		}
		for _, id := range comp {
			state[id] = Black
		}
	}

	return cycles, nil
}

// componentCycles walks the spanning tree rooted at root, appending one cycle
// per non-tree edge. It returns the vertices of the component.
func componentCycles(g *core.Graph, root string, cycles *[][]string) ([]string, error) {
	stack := []string{root}
	pred := map[string]string{root: root}
	order := []string{root}

	// used[x] holds the tree/closed neighbors already accounted for from x.
	used := map[string]map[string]struct{}{root: {}}

	for len(stack) > 0 {
		z := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		zused := used[z]

		nbrs, err := g.NeighborIDs(z)
		if err != nil {
			return nil, errors.Wrapf(err, "NeighborIDs(%q)", z)
		}
		for _, nbr := range nbrs {
			pn, seen := used[nbr]
			switch {
			case !seen:
				// Tree edge: nbr is new.
				pred[nbr] = z
				stack = append(stack, nbr)
				used[nbr] = map[string]struct{}{z: {}}
				order = append(order, nbr)
			case nbr == z:
				// Unreachable on simple graphs; kept for completeness.
				*cycles = append(*cycles, []string{z})
			default:
				if _, done := zused[nbr]; done {
					continue
				}
				// Non-tree edge z–nbr: walk z's ancestors until one is
				// already adjacent-used by nbr.
				cycle := []string{nbr, z}
				p := pred[z]
				for {
					if _, hit := pn[p]; hit {
						break
					}
					cycle = append(cycle, p)
					p = pred[p]
				}
				cycle = append(cycle, p)
				*cycles = append(*cycles, cycle)
				pn[z] = struct{}{}
			}
		}
	}

	return order, nil
}
