// Package metrics exposes cascade activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/comalice/signalx"
)

// Registry holds all metrics for one circuit. It implements signalx.Probe.
type Registry struct {
	NotificationsTotal *prometheus.CounterVec
	ChangesTotal       *prometheus.CounterVec
	CascadeDepth       prometheus.Histogram
	NodesHigh          prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry whose metrics carry a constant circuit label.
func NewRegistry(circuitID string) *Registry {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"circuit": circuitID}

	r := &Registry{registry: reg}

	r.NotificationsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name:        "signalx_notifications_total",
			Help:        "Total number of state deliveries to a node, including no-ops",
			ConstLabels: labels,
		},
		[]string{"node"},
	)

	r.ChangesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name:        "signalx_changes_total",
			Help:        "Total number of node state flips",
			ConstLabels: labels,
		},
		[]string{"node", "state"},
	)

	r.CascadeDepth = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:        "signalx_cascade_depth",
			Help:        "Distance in edges from the cascade origin at which a node flipped",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 4, 8, 16, 32, 64},
		},
	)

	r.NodesHigh = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name:        "signalx_nodes_high",
			Help:        "Number of nodes currently in the true state",
			ConstLabels: labels,
		},
	)

	return r
}

// Observe implements signalx.Probe.
func (r *Registry) Observe(ev signalx.Event) {
	name := ev.Node.Name()
	switch ev.Kind {
	case signalx.Notified:
		r.NotificationsTotal.WithLabelValues(name).Inc()
	case signalx.Changed:
		r.ChangesTotal.WithLabelValues(name, strconv.FormatBool(ev.State)).Inc()
		r.CascadeDepth.Observe(float64(ev.Depth))
		if ev.State {
			r.NodesHigh.Inc()
		} else {
			r.NodesHigh.Dec()
		}
	}
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
