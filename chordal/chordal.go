// Package chordal tests chordality (triangulation) on the cycles of a
// fundamental cycle basis: a basis cycle of length ≥ 4 without a chord is a
// violation. As with package perfect, a chordless cycle outside the basis is
// not detected.
package chordal

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/dfs"
)

// MinViolationLength is the shortest cycle that must carry a chord.
const MinViolationLength = 4

// Verdict is the outcome of IsChordal. Messages holds one line per violation,
// or a single line when the graph is chordal.
type Verdict struct {
	Chordal    bool
	Violations [][]string
	Messages   []string
}

// HasDiagonal reports whether two cycle vertices at index distance ≥ 2,
// other than the closing pair (0, n-1), are adjacent in g.
func HasDiagonal(g *core.Graph, cycle []string) bool {
	n := len(cycle)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if g.HasEdge(cycle[i], cycle[j]) {
				return true
			}
		}
	}

	return false
}

// IsChordal checks every basis cycle of g.
//
// Errors:
//   - core.ErrEmptyGraph if g is nil or empty.
func IsChordal(g *core.Graph) (Verdict, error) {
	if err := core.RequireVertices(g); err != nil {
		return Verdict{}, errors.Wrap(err, "chordal")
	}
	basis, err := dfs.CycleBasis(g)
	if err != nil {
		return Verdict{}, errors.Wrap(err, "chordal")
	}

	var v Verdict
	for _, c := range basis {
		if len(c) < MinViolationLength || HasDiagonal(g, c) {
			continue
		}
		v.Violations = append(v.Violations, c)
		v.Messages = append(v.Messages,
			fmt.Sprintf("graph is not chordal: cycle %v (length %d) has no chord", c, len(c)))
	}
	if len(v.Violations) == 0 {
		v.Chordal = true
		v.Messages = []string{"graph is chordal"}
	}

	return v, nil
}
