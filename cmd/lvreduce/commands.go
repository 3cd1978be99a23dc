package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreduce/analysis"
	"github.com/katalvlaran/lvreduce/config"
	"github.com/katalvlaran/lvreduce/edgelist"
)

// cliOptions are the flags shared by every command.
type cliOptions struct {
	edges      string
	files      []string
	configPath string
	vertices   int
	cutoff     int
	steps      int
	jsonOut    bool
	dotOut     bool

	// watch only
	analysisKind string
	metricsAddr  string
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "lvreduce",
		Short:         "Color, reduce and check simple undirected graphs",
		Long:          "lvreduce reads edge lists (\"1,9 ; 2,4\" text or YAML) and runs DSatur coloring,\nfriend-pair reduction, or the perfect and chordal checks on them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.edges, "edges", "", `edge list, e.g. "1,9 ; 2,4"`)
	pf.StringSliceVar(&opts.files, "file", nil, "edge-list file (.txt text form or .yaml); repeatable")
	pf.StringVar(&opts.configPath, "config", "", "YAML settings file")
	pf.IntVar(&opts.vertices, "vertices", 0, "declared vertex count: vertices are 1..n")
	pf.IntVar(&opts.cutoff, "cutoff", 0, "friend-pair path cutoff in edges (default from config)")
	pf.IntVar(&opts.steps, "steps", 0, "maximum contractions, 0 = until no friend pair is left")
	pf.BoolVar(&opts.jsonOut, "json", false, "print JSON instead of text")
	pf.BoolVar(&opts.dotOut, "dot", false, "print Graphviz DOT (colored for color and reduce) instead of text")

	for _, kind := range []string{analysis.KindColor, analysis.KindReduce, analysis.KindPerfect, analysis.KindChordal} {
		root.AddCommand(newAnalysisCmd(opts, kind))
	}
	root.AddCommand(newWatchCmd(opts))

	return root
}

var analysisShort = map[string]string{
	analysis.KindColor:   "Color the graph with DSatur",
	analysis.KindReduce:  "Contract friend pairs, then color the reduced graph",
	analysis.KindPerfect: "Look for an odd hole or odd antihole",
	analysis.KindChordal: "Look for chordless basis cycles of length ≥ 4",
}

func newAnalysisCmd(opts *cliOptions, kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: analysisShort[kind],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			docs, err := loadDocuments(opts)
			if err != nil {
				return err
			}
			reports, err := runAll(cmd.Context(), analysis.New(analysis.WithConfig(cfg)), kind, docs)
			if err != nil {
				return err
			}

			return writeReports(cmd.OutOrStdout(), opts, newPrinter(cmd.OutOrStdout(), cfg), reports)
		},
	}
}

// resolveConfig loads --config (or defaults) and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	return applyFlags(cmd, opts, cfg)
}

// applyFlags overlays the explicitly set flags on cfg and validates the result.
func applyFlags(cmd *cobra.Command, opts *cliOptions, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("cutoff") {
		cfg.Cutoff = opts.cutoff
	}
	if flags.Changed("steps") {
		cfg.MaxSteps = opts.steps
	}
	if flags.Changed("vertices") {
		cfg.VertexCount = opts.vertices
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if v := flags.Lookup("v"); v != nil && !v.Changed && cfg.Verbosity > 0 {
		_ = v.Value.Set(strconv.Itoa(cfg.Verbosity))
	}

	return cfg, nil
}

// loadDocuments gathers --edges and every --file, in that order.
func loadDocuments(opts *cliOptions) ([]edgelist.Document, error) {
	var docs []edgelist.Document
	if opts.edges != "" {
		edges, err := edgelist.Parse(opts.edges)
		if err != nil {
			return nil, errors.Wrap(err, "--edges")
		}
		docs = append(docs, edgelist.Document{Name: "edges", Edges: edges})
	}
	for _, path := range opts.files {
		doc, err := edgelist.LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, errors.New("no input: pass --edges or --file")
	}

	return docs, nil
}
