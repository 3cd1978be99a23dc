package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// SimplePaths returns every simple path from src to dst with at most cutoff
// edges (Unbounded for no limit). Each path starts with src and ends with dst.
// src == dst yields no paths.
//
// Paths appear in DFS discovery order over core neighbor order.
func SimplePaths(g *core.Graph, src, dst string, cutoff int) ([][]string, error) {
	var out [][]string
	err := WalkSimplePaths(g, src, dst, cutoff, func(path []string) bool {
		out = append(out, append([]string(nil), path...))
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// WalkSimplePaths calls fn for each simple src→dst path with at most cutoff
// edges, stopping as soon as fn returns false.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrBadCutoff.
func WalkSimplePaths(g *core.Graph, src, dst string, cutoff int, fn PathFunc) error {
	if g == nil {
		return ErrGraphNil
	}
	if cutoff == 0 || cutoff < Unbounded {
		return errors.Wrapf(ErrBadCutoff, "cutoff=%d", cutoff)
	}
	if !g.HasVertex(src) {
		return errors.Wrapf(ErrStartVertexNotFound, "source %q", src)
	}
	if !g.HasVertex(dst) {
		return errors.Wrapf(ErrStartVertexNotFound, "target %q", dst)
	}
	if src == dst {
		return nil
	}

	w := &pathWalker{
		g:      g,
		dst:    dst,
		cutoff: cutoff,
		state:  map[string]int{src: Gray},
		path:   []string{src},
		fn:     fn,
	}

	return w.visit(src)
}

// pathWalker carries the state of one WalkSimplePaths call.
type pathWalker struct {
	g       *core.Graph
	dst     string
	cutoff  int
	state   map[string]int // Gray while on the current path
	path    []string
	fn      PathFunc
	stopped bool
}

// visit extends the current path (ending at id) by each neighbor in turn.
func (w *pathWalker) visit(id string) error {
	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return errors.Wrapf(err, "dfs: NeighborIDs(%q)", id)
	}
	edges := len(w.path) - 1 // edges on the path so far

	for _, nbr := range nbrs {
		if w.stopped {
			return nil
		}
		if w.state[nbr] == Gray {
			continue
		}
		if nbr == w.dst {
			if !w.fn(append(w.path, nbr)) {
				w.stopped = true
			}
			continue
		}
		// Going through nbr costs one edge and reaching dst at least one more.
		if w.cutoff != Unbounded && edges+2 > w.cutoff {
			continue
		}

		w.state[nbr] = Gray
		w.path = append(w.path, nbr)
		if err = w.visit(nbr); err != nil {
			return err
		}
		w.path = w.path[:len(w.path)-1]
		w.state[nbr] = White
	}

	return nil
}
