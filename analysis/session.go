package analysis

import (
	"context"

	"github.com/google/uuid"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/friends"
)

// Session is one interactive reduction: the graph as entered, the graph as
// contracted so far, and the pairs still pending. Drivers call Step or Run,
// then Color once satisfied.
//
// A Session is not safe for concurrent Step/Run calls.
type Session struct {
	ID string

	a       *Analyzer
	initial *core.Graph
	reducer *friends.Reducer
}

// NewSession builds in and computes its first friend pairs.
func (a *Analyzer) NewSession(in Input) (*Session, error) {
	g, err := a.Build(in)
	if err != nil {
		return nil, err
	}
	s := &Session{ID: uuid.New().String(), a: a, initial: g}
	s.reducer, err = a.reducer(in, a.cfg.MaxSteps)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("analysis: session %s: %d vertices, %d friend pairs", s.ID, g.VertexCount(), len(s.reducer.Pending()))

	return s, nil
}

// Initial returns a copy of the graph as entered.
func (s *Session) Initial() *core.Graph { return s.initial.Clone() }

// Current returns the contracted graph. Callers must not mutate it.
func (s *Session) Current() *core.Graph { return s.reducer.Graph() }

// Pending lists the friend pairs of the current graph.
func (s *Session) Pending() []friends.Pair { return s.reducer.Pending() }

// History lists every step taken, stale ones included.
func (s *Session) History() []friends.Contraction { return s.reducer.History() }

// Done reports whether no friend pair is left.
func (s *Session) Done() bool { return s.reducer.Done() }

// Step contracts the first pending pair; see friends.Reducer.Step.
func (s *Session) Step() (friends.Contraction, error) { return s.reducer.Step() }

// Run contracts until the fixpoint or the configured step cap.
func (s *Session) Run(ctx context.Context) ([]friends.Contraction, error) {
	return s.reducer.Run(ctx)
}

// Color colors the current graph with DSatur.
func (s *Session) Color() (coloring.Coloring, error) {
	c, err := coloring.DSatur(s.Current())
	if err != nil {
		return nil, err
	}
	s.a.rec.Colors(c.NumColors())
	klog.V(2).Infof("analysis: session %s: final coloring uses %d colors", s.ID, c.NumColors())

	return c, nil
}
