// Package planarity delegates planarity testing to an external Tester.
// lvreduce has no embedding algorithm of its own; Check only validates its
// inputs and propagates the tester's answer.
package planarity

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// ErrNoTester is returned when Check is called without a Tester.
var ErrNoTester = errors.New("planarity: no tester configured")

// Tester answers whether a graph admits a planar embedding.
type Tester interface {
	IsPlanar(g *core.Graph) (bool, error)
}

// Func adapts a plain function to Tester.
type Func func(g *core.Graph) (bool, error)

// IsPlanar calls f(g).
func (f Func) IsPlanar(g *core.Graph) (bool, error) { return f(g) }

// Check asks t whether g is planar.
//
// Errors:
//   - ErrNoTester if t is nil.
//   - core.ErrEmptyGraph if g is nil or empty.
//   - the tester's own error, wrapped.
func Check(g *core.Graph, t Tester) (bool, error) {
	if t == nil {
		return false, ErrNoTester
	}
	if err := core.RequireVertices(g); err != nil {
		return false, errors.Wrap(err, "planarity")
	}
	ok, err := t.IsPlanar(g)
	if err != nil {
		return false, errors.Wrap(err, "planarity: tester")
	}

	return ok, nil
}
