// Package metrics holds the HTTP surface metrics of the node.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the HTTP adapter.
type Metrics struct {
	Requests        *prometheus.CounterVec
	EndpointLatency *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// New creates and registers the HTTP metrics on reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route and status code",
		}, []string{"route", "status"}),
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hiebus_http_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "hiebus_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),
	}
}

func (m *Metrics) ObserveRequest(route string, status int, durationSeconds float64) {
	m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.EndpointLatency.WithLabelValues(route).Observe(durationSeconds)
}
