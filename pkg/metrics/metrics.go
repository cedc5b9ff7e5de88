package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "weather_insights"

// Metrics holds the Prometheus collectors for upstream calls, caching and dashboards.
type Metrics struct {
	// Open-Meteo calls.
	UpstreamRequests *prometheus.CounterVec   // labels: endpoint, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: endpoint

	DatasetCache    *prometheus.CounterVec // labels: result={hit,miss}
	MarineFallbacks prometheus.Counter

	DashboardBuilds *prometheus.CounterVec // labels: outcome={success,error,invalid}
	ActiveStreams   prometheus.Gauge
}

// New creates and registers all metrics with the default Prometheus registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.DatasetCache,
		m.MarineFallbacks,
		m.DashboardBuilds,
		m.ActiveStreams,
	)
	return m
}

// NewForTesting creates unregistered metrics so tests can build as many as they need.
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Open-Meteo requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_duration_seconds",
			Help:      "Open-Meteo request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		DatasetCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_cache_total",
			Help:      "Forecast dataset cache lookups by result.",
		}, []string{"result"}),
		MarineFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "marine_fallbacks_total",
			Help:      "Marine fetches that failed and left wave and sea temperature series empty.",
		}),
		DashboardBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_builds_total",
			Help:      "Dashboard builds by outcome.",
		}, []string{"outcome"}),
		ActiveStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_streams",
			Help:      "Open dashboard refresh streams.",
		}),
	}
}
