package main

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvreduce/analysis"
	"github.com/katalvlaran/lvreduce/bfs"
	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/edgelist"
	"github.com/katalvlaran/lvreduce/friends"
)

// report is the result of one analysis on one document. Only the fields of
// the analysis that ran are set.
type report struct {
	Name string `json:"name"`
	Kind string `json:"kind"`

	Vertices []string       `json:"vertices,omitempty"`
	Coloring map[string]int `json:"coloring,omitempty"`
	Colors   int            `json:"colors,omitempty"`

	// Components counts connected components of the colored graph.
	Components int `json:"components,omitempty"`

	Session string                `json:"session,omitempty"`
	Steps   []friends.Contraction `json:"steps,omitempty"`
	Reduced string                `json:"reduced,omitempty"`
	Pending int                   `json:"pending,omitempty"`

	Perfect *bool    `json:"perfect,omitempty"`
	Verdict string   `json:"verdict,omitempty"`
	Witness []string `json:"witness,omitempty"`

	Chordal    *bool      `json:"chordal,omitempty"`
	Violations [][]string `json:"violations,omitempty"`

	Messages []string `json:"messages,omitempty"`

	graph *core.Graph // analysed graph, reduced for KindReduce
}

// runAll analyses every document concurrently; reports keep input order.
func runAll(ctx context.Context, a *analysis.Analyzer, kind string, docs []edgelist.Document) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]report, len(docs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			r, err := runOne(ctx, a, kind, doc)
			if err != nil {
				return errors.Wrap(err, doc.Name)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func runOne(ctx context.Context, a *analysis.Analyzer, kind string, doc edgelist.Document) (report, error) {
	in := analysis.Input{Edges: doc.Edges, VertexCount: doc.Vertices}
	r := report{Name: doc.Name, Kind: kind}
	g, err := a.Build(in)
	if err != nil {
		return r, err
	}
	r.graph = g

	switch kind {
	case analysis.KindColor:
		c, err := a.Color(in)
		if err != nil {
			return r, err
		}
		r.Vertices, r.Coloring, r.Colors = g.Vertices(), c, c.NumColors()
		if err = r.countComponents(ctx, g); err != nil {
			return r, err
		}

	case analysis.KindReduce:
		s, err := a.NewSession(in)
		if err != nil {
			return r, err
		}
		if _, err = s.Run(ctx); err != nil {
			return r, err
		}
		c, err := s.Color()
		if err != nil {
			return r, err
		}
		cur := s.Current()
		r.graph = cur
		r.Session = s.ID
		r.Steps = s.History()
		r.Reduced = edgelist.Format(cur.Edges())
		r.Pending = len(s.Pending())
		r.Vertices, r.Coloring, r.Colors = cur.Vertices(), c, c.NumColors()
		if err = r.countComponents(ctx, cur); err != nil {
			return r, err
		}
		for _, st := range r.Steps {
			if st.Stale {
				r.Messages = append(r.Messages, "vertices "+st.U+" and/or "+st.V+" no longer exist")
			}
		}

	case analysis.KindPerfect:
		v, err := a.Perfect(in)
		if err != nil {
			return r, err
		}
		r.Perfect, r.Verdict, r.Witness = &v.Perfect, v.Kind.String(), v.Witness
		r.Messages = []string{v.Message}

	case analysis.KindChordal:
		v, err := a.Chordal(in)
		if err != nil {
			return r, err
		}
		r.Chordal, r.Violations, r.Messages = &v.Chordal, v.Violations, v.Messages

	default:
		return r, errors.Errorf("unknown analysis %q", kind)
	}

	return r, nil
}

func (r *report) countComponents(ctx context.Context, g *core.Graph) error {
	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return err
	}
	r.Components = len(comps)

	return nil
}
