// SPDX-License-Identifier: MIT
// Package: lvreduce/friends
//
// reducer.go — step-wise friend-pair contraction to a fixpoint.
//
// Contract:
//   • Step consumes pending[0], re-validates it against the live graph, contracts,
//     then recomputes the pending list on the contracted graph.
//   • A stale pair is dropped with a warning; the graph is not touched.
//   • Run stops at the fixpoint, at MaxSteps (if > 0) or on ctx cancellation.

package friends

import (
	"context"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvreduce/core"
)

// ErrFixpoint is returned by Step when no friend pair is pending.
var ErrFixpoint = errors.New("friends: no friend pair left")

// Contraction records one Step.
type Contraction struct {
	Step    int    `json:"step"`             // 1-based step number
	U       string `json:"u"`                // consumed pair, first vertex
	V       string `json:"v"`                // consumed pair, second vertex
	Merged  string `json:"merged,omitempty"` // new vertex ID; empty when Stale
	Stale   bool   `json:"stale,omitempty"`  // pair referenced a vertex no longer present
	Pending int    `json:"pending"`          // friend pairs pending after the step
}

// Option configures a Reducer.
type Option func(*Reducer)

// WithCutoff sets the path cutoff (default DefaultCutoff).
func WithCutoff(n int) Option {
	return func(r *Reducer) { r.cutoff = n }
}

// WithMaxSteps caps Run; 0 means no cap.
func WithMaxSteps(n int) Option {
	return func(r *Reducer) { r.maxSteps = n }
}

// WithObserver registers fn to receive every Contraction as it happens.
func WithObserver(fn func(Contraction)) Option {
	return func(r *Reducer) { r.observe = fn }
}

// Reducer drives contraction of a graph it mutates in place.
type Reducer struct {
	g        *core.Graph
	cutoff   int
	maxSteps int
	observe  func(Contraction)

	pending []Pair
	history []Contraction
}

// NewReducer computes the initial friend pairs of g.
//
// Errors:
//   - core.ErrEmptyGraph, ErrBadCutoff, or a scan error.
func NewReducer(g *core.Graph, opts ...Option) (*Reducer, error) {
	if err := core.RequireVertices(g); err != nil {
		return nil, errors.Wrap(err, "NewReducer")
	}
	r := &Reducer{g: g, cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxSteps < 0 {
		r.maxSteps = 0
	}
	if err := r.refresh(); err != nil {
		return nil, errors.Wrap(err, "NewReducer")
	}

	return r, nil
}

// Graph returns the graph being reduced.
func (r *Reducer) Graph() *core.Graph { return r.g }

// Pending returns a copy of the pending friend pairs, first to be consumed first.
func (r *Reducer) Pending() []Pair { return append([]Pair(nil), r.pending...) }

// History returns every Contraction performed so far.
func (r *Reducer) History() []Contraction { return append([]Contraction(nil), r.history...) }

// Done reports whether the fixpoint is reached.
func (r *Reducer) Done() bool { return len(r.pending) == 0 }

// Step consumes the first pending pair.
//
// Errors:
//   - ErrFixpoint when nothing is pending.
//   - ErrStaleContraction (wrapped) when the pair was stale; the returned
//     Contraction has Stale set and the reducer stays usable.
func (r *Reducer) Step() (Contraction, error) {
	if r.Done() {
		return Contraction{}, ErrFixpoint
	}
	p := r.pending[0]
	c := Contraction{Step: len(r.history) + 1, U: p.U, V: p.V}

	merged, err := Contract(r.g, p.U, p.V)
	switch {
	case errors.Is(err, ErrStaleContraction):
		klog.Warningf("friends: vertices %s and/or %s no longer exist", p.U, p.V)
		r.pending = r.pending[1:]
		c.Stale = true
		c.Pending = len(r.pending)
		r.record(c)
		return c, err
	case err != nil:
		return Contraction{}, err
	}

	if err = r.refresh(); err != nil {
		return Contraction{}, errors.Wrapf(err, "step %d", c.Step)
	}
	c.Merged = merged
	c.Pending = len(r.pending)
	klog.V(2).Infof("friends: step %d contracted (%s,%s) into %s, %d pairs pending",
		c.Step, p.U, p.V, merged, c.Pending)
	r.record(c)

	return c, nil
}

// Run steps until the fixpoint, the step cap or ctx cancellation, and returns
// the contractions performed by this call. Stale pairs are skipped.
func (r *Reducer) Run(ctx context.Context) ([]Contraction, error) {
	var done []Contraction
	for !r.Done() {
		if r.maxSteps > 0 && len(r.history) >= r.maxSteps {
			klog.V(2).Infof("friends: step cap %d reached, %d pairs pending", r.maxSteps, len(r.pending))
			break
		}
		if err := ctx.Err(); err != nil {
			return done, errors.Wrap(err, "friends: Run")
		}
		c, err := r.Step()
		if err != nil && !errors.Is(err, ErrStaleContraction) {
			return done, err
		}
		done = append(done, c)
	}

	return done, nil
}

// refresh recomputes the pending list on the current graph.
func (r *Reducer) refresh() error {
	pairs, err := FindFriendPairs(r.g, r.cutoff)
	if err != nil {
		return err
	}
	r.pending = pairs

	return nil
}

func (r *Reducer) record(c Contraction) {
	r.history = append(r.history, c)
	if r.observe != nil {
		r.observe(c)
	}
}
