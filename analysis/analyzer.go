// SPDX-License-Identifier: MIT
// Package: lvreduce/analysis
//
// analyzer.go — configured entry points and their default-settings wrappers.

package analysis

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/chordal"
	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/config"
	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/friends"
	"github.com/katalvlaran/lvreduce/metrics"
	"github.com/katalvlaran/lvreduce/perfect"
	"github.com/katalvlaran/lvreduce/planarity"
)

// Analysis kinds, used as metric labels and CLI command names.
const (
	KindColor   = "color"
	KindReduce  = "reduce"
	KindPerfect = "perfect"
	KindChordal = "chordal"
	KindPlanar  = "planar"
)

// Reduction is the outcome of friend-pair contraction. Edges is
// Graph.Edges(); Pending is empty at the fixpoint.
type Reduction struct {
	Graph   *core.Graph
	Edges   []core.Edge
	Steps   []friends.Contraction
	Pending []friends.Pair
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithConfig replaces the default settings.
func WithConfig(cfg config.Config) Option {
	return func(a *Analyzer) { a.cfg = cfg }
}

// WithRecorder reports every analysis to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(a *Analyzer) { a.rec = rec }
}

// WithTester sets the planarity collaborator used by Planar.
func WithTester(t planarity.Tester) Option {
	return func(a *Analyzer) { a.tester = t }
}

// Analyzer runs analyses with fixed settings. It holds no per-graph state
// and is safe for concurrent use.
type Analyzer struct {
	cfg    config.Config
	rec    *metrics.Recorder
	tester planarity.Tester
}

// New returns an Analyzer with config.Default unless overridden.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{cfg: config.Default()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Config returns the analyzer's settings.
func (a *Analyzer) Config() config.Config { return a.cfg }

// Build is Build with the configured vertex count as fallback.
func (a *Analyzer) Build(in Input) (*core.Graph, error) {
	if in.VertexCount == 0 {
		in.VertexCount = a.cfg.VertexCount
	}

	return Build(in)
}

// Color builds the graph and colors it with DSatur.
func (a *Analyzer) Color(in Input) (c coloring.Coloring, err error) {
	defer a.observe(KindColor, time.Now(), &err)

	g, err := a.Build(in)
	if err != nil {
		return nil, err
	}
	if c, err = coloring.DSatur(g); err != nil {
		return nil, err
	}
	a.rec.Colors(c.NumColors())

	return c, nil
}

// ReduceStep performs at most one contraction.
func (a *Analyzer) ReduceStep(in Input) (red Reduction, err error) {
	defer a.observe(KindReduce, time.Now(), &err)

	r, err := a.reducer(in, 0)
	if err != nil {
		return Reduction{}, err
	}
	if !r.Done() {
		if _, err = r.Step(); err != nil {
			return Reduction{}, err
		}
	}

	return reduction(r), nil
}

// ReduceToFixpoint contracts until no friend pair is left, the configured
// step cap is hit or ctx is done.
func (a *Analyzer) ReduceToFixpoint(ctx context.Context, in Input) (red Reduction, err error) {
	defer a.observe(KindReduce, time.Now(), &err)

	r, err := a.reducer(in, a.cfg.MaxSteps)
	if err != nil {
		return Reduction{}, err
	}
	if _, err = r.Run(ctx); err != nil {
		return Reduction{}, err
	}

	return reduction(r), nil
}

// Perfect builds the graph and checks it for odd holes and antiholes.
func (a *Analyzer) Perfect(in Input) (v perfect.Verdict, err error) {
	defer a.observe(KindPerfect, time.Now(), &err)

	g, err := a.Build(in)
	if err != nil {
		return perfect.Verdict{}, err
	}
	if v, err = perfect.Check(g, a.cfg.OddCycleMin); err != nil {
		return perfect.Verdict{}, err
	}
	a.rec.Verdict(KindPerfect, v.Kind.String())

	return v, nil
}

// Chordal builds the graph and checks its basis cycles for chords.
func (a *Analyzer) Chordal(in Input) (v chordal.Verdict, err error) {
	defer a.observe(KindChordal, time.Now(), &err)

	g, err := a.Build(in)
	if err != nil {
		return chordal.Verdict{}, err
	}
	if v, err = chordal.IsChordal(g); err != nil {
		return chordal.Verdict{}, err
	}
	result := "chordal"
	if !v.Chordal {
		result = "not-chordal"
	}
	a.rec.Verdict(KindChordal, result)

	return v, nil
}

// Planar builds the graph and asks the configured Tester.
func (a *Analyzer) Planar(in Input) (ok bool, err error) {
	defer a.observe(KindPlanar, time.Now(), &err)

	g, err := a.Build(in)
	if err != nil {
		return false, err
	}
	if ok, err = planarity.Check(g, a.tester); err != nil {
		return false, err
	}
	result := "planar"
	if !ok {
		result = "non-planar"
	}
	a.rec.Verdict(KindPlanar, result)

	return ok, nil
}

func (a *Analyzer) reducer(in Input, maxSteps int) (*friends.Reducer, error) {
	g, err := a.Build(in)
	if err != nil {
		return nil, err
	}

	return friends.NewReducer(g,
		friends.WithCutoff(a.cfg.Cutoff),
		friends.WithMaxSteps(maxSteps),
		friends.WithObserver(func(c friends.Contraction) { a.rec.Contraction(c.Stale) }),
	)
}

func (a *Analyzer) observe(kind string, start time.Time, err *error) {
	if *err != nil {
		*err = errors.Wrap(*err, kind)
	}
	a.rec.Analysis(kind, start, *err)
}

func reduction(r *friends.Reducer) Reduction {
	g := r.Graph()

	return Reduction{Graph: g, Edges: g.Edges(), Steps: r.History(), Pending: r.Pending()}
}

// ColorGraph colors in with default settings.
func ColorGraph(in Input) (coloring.Coloring, error) {
	return New().Color(in)
}

// ReduceByFriendPairs performs one contraction step with the given cutoff.
func ReduceByFriendPairs(in Input, cutoff int) (Reduction, error) {
	return New(WithConfig(withCutoff(cutoff))).ReduceStep(in)
}

// ReduceToFixpoint contracts friend pairs with the given cutoff until none is left.
func ReduceToFixpoint(in Input, cutoff int) (Reduction, error) {
	return New(WithConfig(withCutoff(cutoff))).ReduceToFixpoint(context.Background(), in)
}

// CheckPerfect runs the perfection check with default settings.
func CheckPerfect(in Input) (perfect.Verdict, error) {
	return New().Perfect(in)
}

// CheckChordal runs the chordality check.
func CheckChordal(in Input) (chordal.Verdict, error) {
	return New().Chordal(in)
}

// CheckPlanar delegates to tester.
func CheckPlanar(in Input, tester planarity.Tester) (bool, error) {
	return New(WithTester(tester)).Planar(in)
}

func withCutoff(cutoff int) config.Config {
	cfg := config.Default()
	cfg.Cutoff = cutoff

	return cfg
}
