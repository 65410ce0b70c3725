// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "exec_planner"

// Metrics holds all Prometheus metrics for the quote service.
type Metrics struct {
	registry *prometheus.Registry

	// Quote metrics
	QuotesComputed *prometheus.CounterVec
	QuoteErrors    *prometheus.CounterVec
	QuoteLatency   prometheus.Histogram

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Transport metrics
	ActiveStreamSessions prometheus.Gauge
	StreamMessagesSent   prometheus.Counter
}

// NewMetrics creates a Metrics instance backed by its own registry, so
// tests can construct servers independently without collisions.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		QuotesComputed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "quotes_computed_total",
			Help:      "Total number of quotes computed by execution mode",
		}, []string{"mode"}),
		QuoteErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "quote_errors_total",
			Help:      "Total number of quote failures by reason",
		}, []string{"reason"}),
		QuoteLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "quote_latency_seconds",
			Help:      "Quote computation latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),

		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of quote cache hits",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of quote cache misses",
		}),

		ActiveStreamSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "active_sessions",
			Help:      "Current number of open quote stream sessions",
		}),
		StreamMessagesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "messages_sent_total",
			Help:      "Total number of quote results sent over streams",
		}),
	}
}

// Handler returns an HTTP handler serving this instance's metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
