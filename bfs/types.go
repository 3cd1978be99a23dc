package bfs

import (
	"context"

	"github.com/pkg/errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is the outcome of one search.
type Result struct {
	Order  []string          // visit sequence
	Depth  map[string]int    // hops from the start
	Parent map[string]string // BFS-tree predecessor; absent for the start
}
