package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreduce/analysis"
	"github.com/katalvlaran/lvreduce/config"
	"github.com/katalvlaran/lvreduce/metrics"
)

func newWatchCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run an analysis whenever an input file or the config changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(opts.files) == 0 {
				return errors.New("watch needs at least one --file")
			}
			switch opts.analysisKind {
			case analysis.KindColor, analysis.KindReduce, analysis.KindPerfect, analysis.KindChordal:
			default:
				return errors.Errorf("unknown --analysis %q", opts.analysisKind)
			}
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return watch(ctx, cmd, opts, cfg)
		},
	}
	cmd.Flags().StringVar(&opts.analysisKind, "analysis", analysis.KindColor, "analysis to re-run: color|reduce|perfect|chordal")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")

	return cmd
}

// watch runs once, then again on every change until ctx is done. Runs are
// serialized on the calling goroutine. Analysis errors are logged and do not
// stop the loop.
func watch(ctx context.Context, cmd *cobra.Command, opts *cliOptions, cfg config.Config) error {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	if opts.metricsAddr != "" {
		shutdown := serveMetrics(opts.metricsAddr, reg)
		defer shutdown()
	}

	rerun := func(cfg config.Config) {
		out := cmd.OutOrStdout()
		docs, err := loadDocuments(opts)
		if err == nil {
			var reports []report
			if reports, err = runAll(ctx, analysis.New(analysis.WithConfig(cfg), analysis.WithRecorder(rec)), opts.analysisKind, docs); err == nil {
				err = writeReports(out, opts, newPrinter(out, cfg), reports)
			}
		}
		if err != nil {
			klog.Warningf("watch: %v", err)
		}
	}

	var reloads chan config.Config
	done := make(chan struct{})
	defer close(done)
	if opts.configPath != "" {
		loader, err := config.NewLoader(opts.configPath)
		if err != nil {
			return err
		}
		reloads = make(chan config.Config)
		loader.OnChange(func(c config.Config) {
			select {
			case reloads <- c:
			case <-done:
			}
		})
		stopConfig, err := loader.Watch()
		if err != nil {
			return err
		}
		defer stopConfig()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer w.Close()
	for _, path := range opts.files {
		if err = w.Add(path); err != nil {
			return errors.Wrapf(err, "watch %s", path)
		}
	}

	rerun(cfg)
	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-reloads:
			next, err := applyFlags(cmd, opts, c)
			if err != nil {
				klog.Warningf("watch: keeping previous settings: %v", err)
				continue
			}
			cfg = next
			klog.V(2).Infof("watch: config reloaded")
			rerun(cfg)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				klog.V(2).Infof("watch: %s changed", ev.Name)
				rerun(cfg)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Warningf("watch: %v", err)
		}
	}
}

// serveMetrics exposes reg on addr until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Warningf("watch: metrics server: %v", err)
		}
	}()
	klog.V(2).Infof("watch: serving metrics on %s", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
