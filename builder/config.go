// SPDX-License-Identifier: MIT
// Package: lvreduce/builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults (no surprises):
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"
//   • center      = CenterVertexID
//
// Option constructors VALIDATE and PANIC on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
}

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig constructs a config with defaults and applies opts in order
// (last wins). Empty bipartite prefixes resolve to defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
