// Package metrics exposes Prometheus instruments for lvreduce analyses.
//
// Instruments live on a caller-owned registry; a nil *Recorder is valid and
// records nothing, so library code can call it unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lvreduce"

// Recorder groups the lvreduce instruments.
type Recorder struct {
	analyses     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	contractions prometheus.Counter
	stalePairs   prometheus.Counter
	colorsUsed   prometheus.Histogram
	verdicts     *prometheus.CounterVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		analyses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses run, by kind and outcome.",
		}, []string{"kind", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one analysis.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}, []string{"kind"}),
		contractions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contractions_total",
			Help:      "Friend pairs contracted.",
		}),
		stalePairs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_pairs_total",
			Help:      "Friend pairs skipped because a vertex no longer existed.",
		}),
		colorsUsed: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "colors_used",
			Help:      "Number of colors in each DSatur coloring.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Structural verdicts, by check and result.",
		}, []string{"check", "result"}),
	}
}

// Analysis records one finished analysis of kind, started at start.
func (r *Recorder) Analysis(kind string, start time.Time, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.analyses.WithLabelValues(kind, status).Inc()
	r.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// Contraction counts one contraction step; stale steps count separately.
func (r *Recorder) Contraction(stale bool) {
	if r == nil {
		return
	}
	if stale {
		r.stalePairs.Inc()
		return
	}
	r.contractions.Inc()
}

// Colors observes the size of a coloring.
func (r *Recorder) Colors(n int) {
	if r == nil {
		return
	}
	r.colorsUsed.Observe(float64(n))
}

// Verdict counts a check outcome, e.g. ("perfect", "odd-hole").
func (r *Recorder) Verdict(check, result string) {
	if r == nil {
		return
	}
	r.verdicts.WithLabelValues(check, result).Inc()
}
