// Package perfect checks graph perfection through odd holes and odd antiholes
// (strong perfect graph theorem) found among cycle-basis cycles.
//
// The search is a heuristic: only cycles of a fundamental cycle basis of G and
// of its complement are examined, so an odd hole that is not a basis cycle
// goes unnoticed. A reported hole or antihole is always genuine.
package perfect

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/dfs"
)

// DefaultMinLength is the shortest odd cycle regarded as a hole.
const DefaultMinLength = 5

// ErrBadMinLength indicates a minimum cycle length below 3.
var ErrBadMinLength = errors.New("perfect: minimum cycle length must be ≥ 3")

// Kind classifies an imperfection witness.
type Kind int

const (
	None Kind = iota
	OddHole
	OddAntihole
)

func (k Kind) String() string {
	switch k {
	case OddHole:
		return "odd-hole"
	case OddAntihole:
		return "odd-antihole"
	}

	return "none"
}

// Verdict is the outcome of IsPerfect. Witness is nil when Perfect.
type Verdict struct {
	Perfect bool
	Kind    Kind
	Witness []string
	Message string
}

// FindOddCycles returns the basis cycles of g with odd length ≥ minLength,
// in basis order.
func FindOddCycles(g *core.Graph, minLength int) ([][]string, error) {
	if minLength < 3 {
		return nil, errors.Wrapf(ErrBadMinLength, "minLength=%d", minLength)
	}
	basis, err := dfs.CycleBasis(g)
	if err != nil {
		return nil, errors.Wrap(err, "FindOddCycles")
	}

	var odd [][]string
	for _, c := range basis {
		if len(c) >= minLength && len(c)%2 == 1 {
			odd = append(odd, c)
		}
	}

	return odd, nil
}

// IsOddHole reports whether cycle is an induced cycle of g: consecutive
// vertices (closing pair included) are adjacent and no other pair is.
// Length and parity are the caller's filter (see FindOddCycles).
func IsOddHole(g *core.Graph, cycle []string) bool {
	n := len(cycle)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			consecutive := j == i+1 || (i == 0 && j == n-1)
			if consecutive != g.HasEdge(cycle[i], cycle[j]) {
				return false
			}
		}
	}

	return true
}

// IsOddAntihole is IsOddHole evaluated on the complement of g.
func IsOddAntihole(g *core.Graph, cycle []string) bool {
	return IsOddHole(core.Complement(g), cycle)
}

// IsPerfect checks g with DefaultMinLength.
func IsPerfect(g *core.Graph) (Verdict, error) {
	return Check(g, DefaultMinLength)
}

// Check looks for an odd hole among the odd basis cycles of g, then for an
// odd antihole among those of its complement. The first witness wins.
//
// Errors:
//   - core.ErrEmptyGraph, ErrBadMinLength.
func Check(g *core.Graph, minLength int) (Verdict, error) {
	if err := core.RequireVertices(g); err != nil {
		return Verdict{}, errors.Wrap(err, "perfect")
	}

	holes, err := FindOddCycles(g, minLength)
	if err != nil {
		return Verdict{}, err
	}
	for _, c := range holes {
		if IsOddHole(g, c) {
			return Verdict{
				Kind:    OddHole,
				Witness: c,
				Message: fmt.Sprintf("odd hole found in G: cycle %v", c),
			}, nil
		}
	}

	comp := core.Complement(g)
	antiholes, err := FindOddCycles(comp, minLength)
	if err != nil {
		return Verdict{}, err
	}
	for _, c := range antiholes {
		if IsOddHole(comp, c) {
			return Verdict{
				Kind:    OddAntihole,
				Witness: c,
				Message: fmt.Sprintf("odd antihole found in the complement of G: cycle %v", c),
			}, nil
		}
	}

	return Verdict{Perfect: true, Message: "graph is perfect"}, nil
}
