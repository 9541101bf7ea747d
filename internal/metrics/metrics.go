// Package metrics exposes Prometheus collectors for the HTTP layer and the window parser.
package metrics

import (
	"strconv"
	"time"

	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Window metrics
	WindowsTotal   *prometheus.CounterVec
	WindowMaxRows  prometheus.Histogram
	UnboundedTotal prometheus.Counter
}

// New registers every collector on reg. A nil reg means the default registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "pagewindow"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),

		WindowsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "window",
				Name:      "parsed_total",
				Help:      "Windows parsed, by detected range and sort convention",
			},
			[]string{"range", "sort"},
		),
		WindowMaxRows: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "window",
				Name:      "max_rows",
				Help:      "Requested page sizes of bounded windows",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		UnboundedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "window",
				Name:      "unbounded_total",
				Help:      "Windows that asked for all rows",
			},
		),
	}
}

// RecordHTTPRequest records one finished HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveWindow records the conventions and size of a parsed window.
func (m *Metrics) ObserveWindow(d pagination.Descriptor) {
	m.WindowsTotal.WithLabelValues(string(d.Range), string(d.Sort)).Inc()
	if d.Window.IsUnbounded() {
		m.UnboundedTotal.Inc()
		return
	}
	m.WindowMaxRows.Observe(float64(d.Window.Max()))
}
