// SPDX-License-Identifier: MIT
// Package: lvreduce/friends
//
// pairs.go — friend-pair predicate, pair scan and contraction.

package friends

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/dfs"
)

// DefaultCutoff bounds friend-pair path enumeration (edges).
const DefaultCutoff = 3

var (
	// ErrBadCutoff indicates a cutoff below one edge.
	ErrBadCutoff = errors.New("friends: cutoff must be ≥ 1")

	// ErrStaleContraction signals that a pair no longer refers to two live
	// vertices. The graph is left untouched; callers treat it as a no-op.
	ErrStaleContraction = errors.New("friends: stale contraction")
)

// Pair is an ordered friend pair as reported by FindFriendPairs.
type Pair struct {
	U string
	V string
}

// IsFriendPair reports whether (u, v) is a friend pair of g under cutoff.
//
// Errors:
//   - ErrBadCutoff if cutoff < 1.
//   - dfs.ErrGraphNil, dfs.ErrStartVertexNotFound (wrapped).
func IsFriendPair(g *core.Graph, u, v string, cutoff int) (bool, error) {
	if cutoff < 1 {
		return false, errors.Wrapf(ErrBadCutoff, "cutoff=%d", cutoff)
	}

	found, friends := false, true
	var innerErr error
	err := dfs.WalkSimplePaths(g, u, v, cutoff, func(path []string) bool {
		found = true
		ok, err := hasEvenAlternative(g, path)
		if err != nil {
			innerErr = err
			return false
		}
		if !ok {
			friends = false
			return false
		}
		return true
	})
	if err != nil {
		return false, errors.Wrapf(err, "IsFriendPair(%s,%s)", u, v)
	}
	if innerErr != nil {
		return false, errors.Wrapf(innerErr, "IsFriendPair(%s,%s)", u, v)
	}

	return found && friends, nil
}

// hasEvenAlternative reports whether the subgraph induced by path holds an
// even-length simple path between its endpoints.
func hasEvenAlternative(g *core.Graph, path []string) (bool, error) {
	keep := make(map[string]bool, len(path))
	for _, id := range path {
		keep[id] = true
	}
	sub := core.InducedSubgraph(g, keep)

	even := false
	err := dfs.WalkSimplePaths(sub, path[0], path[len(path)-1], dfs.Unbounded, func(p []string) bool {
		if (len(p)-1)%2 == 0 {
			even = true
			return false
		}
		return true
	})

	return even, err
}

// FindFriendPairs scans ordered pairs (u, v), u ≠ v, with u and v both in
// insertion order, and returns the friend pairs in scan order. Both (u, v)
// and (v, u) are reported.
func FindFriendPairs(g *core.Graph, cutoff int) ([]Pair, error) {
	if cutoff < 1 {
		return nil, errors.Wrapf(ErrBadCutoff, "cutoff=%d", cutoff)
	}
	if g == nil {
		return nil, dfs.ErrGraphNil
	}

	ids := g.Vertices()
	var pairs []Pair
	for _, u := range ids {
		for _, v := range ids {
			if u == v {
				continue
			}
			ok, err := IsFriendPair(g, u, v, cutoff)
			if err != nil {
				return nil, errors.Wrap(err, "FindFriendPairs")
			}
			if ok {
				pairs = append(pairs, Pair{U: u, V: v})
			}
		}
	}

	return pairs, nil
}

// Contract merges u and v into a fresh vertex and returns its ID.
//
// Errors:
//   - ErrStaleContraction if u or v is no longer a vertex of g (g untouched).
func Contract(g *core.Graph, u, v string) (string, error) {
	if g == nil {
		return "", dfs.ErrGraphNil
	}
	w, err := g.Contract(u, v)
	if errors.Is(err, core.ErrVertexNotFound) {
		return "", errors.Wrapf(ErrStaleContraction, "(%s,%s)", u, v)
	}
	if err != nil {
		return "", errors.Wrapf(err, "Contract(%s,%s)", u, v)
	}

	return w, nil
}
