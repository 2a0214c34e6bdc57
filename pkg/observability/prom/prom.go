// Package prom implements the observability hooks with Prometheus metrics.
//
// The CLI registers a [Collector] for both hook categories and, when asked,
// writes the gathered metrics to a node-exporter textfile after the run.
package prom

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/observability"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "techradar"

// Collector records layout and render events.
type Collector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	layouts        *prometheus.CounterVec
	layoutDuration prometheus.Histogram
	entries        prometheus.Counter
	placed         prometheus.Gauge
	dropped        *prometheus.CounterVec
	ticks          prometheus.Histogram
	converged      *prometheus.CounterVec
	simDuration    prometheus.Histogram
	renders        *prometheus.CounterVec
	renderBytes    *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
}

var (
	_ observability.LayoutHooks = (*Collector)(nil)
	_ observability.RenderHooks = (*Collector)(nil)
)

// New creates a collector registered with reg (prometheus.DefaultRegisterer
// when nil). Metrics are registered lazily on the first event.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Collector{reg: reg, namespace: namespace}
}

func (c *Collector) ensureRegistered() {
	c.once.Do(func() {
		c.layouts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "layout",
			Name:      "passes_total",
			Help:      "Layout passes by result (ok, error).",
		}, []string{"result"})
		c.layoutDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Subsystem: "layout",
			Name:      "duration_seconds",
			Help:      "Wall time of a layout pass.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		})
		c.entries = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "layout",
			Name:      "entries_total",
			Help:      "Entries submitted to the layout engine.",
		})
		c.placed = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: c.namespace,
			Subsystem: "layout",
			Name:      "entries_placed",
			Help:      "Entries placed by the most recent layout pass.",
		})
		c.dropped = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "layout",
			Name:      "entries_dropped_total",
			Help:      "Entries skipped because their quadrant or ring does not exist.",
		}, []string{"reason"})
		c.ticks = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Subsystem: "simulation",
			Name:      "ticks",
			Help:      "Solver ticks per overlap resolution.",
			Buckets:   []float64{10, 50, 100, 200, 300, 500, 1000},
		})
		c.converged = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Overlap resolutions by outcome (converged, capped).",
		}, []string{"outcome"})
		c.simDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Subsystem: "simulation",
			Name:      "duration_seconds",
			Help:      "Wall time of overlap resolution.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		})
		c.renders = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "render",
			Name:      "outputs_total",
			Help:      "Rendered outputs by format and result.",
		}, []string{"format", "result"})
		c.renderBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Subsystem: "render",
			Name:      "bytes_total",
			Help:      "Bytes written by format.",
		}, []string{"format"})
		c.renderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Subsystem: "render",
			Name:      "duration_seconds",
			Help:      "Wall time of rendering by format.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"format"})

		c.reg.MustRegister(
			c.layouts, c.layoutDuration, c.entries, c.placed, c.dropped,
			c.ticks, c.converged, c.simDuration,
			c.renders, c.renderBytes, c.renderDuration,
		)
	})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// OnLayoutStart implements observability.LayoutHooks.
func (c *Collector) OnLayoutStart(_ context.Context, _, _, entries int) {
	c.ensureRegistered()
	c.entries.Add(float64(entries))
}

// OnEntryDropped implements observability.LayoutHooks.
func (c *Collector) OnEntryDropped(_ context.Context, reason string) {
	c.ensureRegistered()
	c.dropped.WithLabelValues(reason).Inc()
}

// OnSimulationComplete implements observability.LayoutHooks.
func (c *Collector) OnSimulationComplete(_ context.Context, ticks int, converged bool, d time.Duration) {
	c.ensureRegistered()
	c.ticks.Observe(float64(ticks))
	c.simDuration.Observe(d.Seconds())
	outcome := "capped"
	if converged {
		outcome = "converged"
	}
	c.converged.WithLabelValues(outcome).Inc()
}

// OnLayoutComplete implements observability.LayoutHooks.
func (c *Collector) OnLayoutComplete(_ context.Context, placed int, d time.Duration, err error) {
	c.ensureRegistered()
	c.layouts.WithLabelValues(result(err)).Inc()
	c.layoutDuration.Observe(d.Seconds())
	if err == nil {
		c.placed.Set(float64(placed))
	}
}

// OnRenderStart implements observability.RenderHooks.
func (c *Collector) OnRenderStart(context.Context, string) {
	c.ensureRegistered()
}

// OnRenderComplete implements observability.RenderHooks.
func (c *Collector) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	c.ensureRegistered()
	c.renders.WithLabelValues(format, result(err)).Inc()
	c.renderDuration.WithLabelValues(format).Observe(d.Seconds())
	if err == nil {
		c.renderBytes.WithLabelValues(format).Add(float64(size))
	}
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, replacing the file atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write metrics to %s", path)
	}
	return nil
}
