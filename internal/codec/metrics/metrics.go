// Package metrics provides Prometheus metrics for the message codec.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Direction labels.
const (
	DirectionPack   = "pack"
	DirectionUnpack = "unpack"
)

type Metrics struct {
	MessagesPacked   *prometheus.CounterVec // by kind
	MessagesUnpacked *prometheus.CounterVec // by kind
	Failures         *prometheus.CounterVec // by direction and error category
	TemplateDefects  *prometheus.CounterVec // by kind and slot key
	Duration         *prometheus.HistogramVec

	TemplateCacheHits   *prometheus.CounterVec
	TemplateCacheMisses *prometheus.CounterVec
}

// New registers the codec metrics with reg. Passing nil registers with the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		MessagesPacked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_messages_packed_total",
			Help: "Total number of messages packed to XML by kind",
		}, []string{"kind"}),

		MessagesUnpacked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_messages_unpacked_total",
			Help: "Total number of messages unpacked from XML by kind",
		}, []string{"kind"}),

		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_failures_total",
			Help: "Total number of failed pack or unpack calls by error category",
		}, []string{"direction", "category"}),

		TemplateDefects: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_template_defects_total",
			Help: "Slots the codec expected but did not find in a template",
		}, []string{"kind", "key"}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hiebus_codec_duration_seconds",
			Help:    "Duration of pack and unpack calls",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.1},
		}, []string{"direction"}),

		TemplateCacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_template_cache_hits_total",
			Help: "Skeleton cache hits by kind",
		}, []string{"kind"}),

		TemplateCacheMisses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hiebus_codec_template_cache_misses_total",
			Help: "Skeleton cache misses by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) RecordPacked(kind string) {
	m.MessagesPacked.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordUnpacked(kind string) {
	m.MessagesUnpacked.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordFailure(direction, category string) {
	m.Failures.WithLabelValues(direction, category).Inc()
}

func (m *Metrics) RecordTemplateDefect(kind, key string) {
	m.TemplateDefects.WithLabelValues(kind, key).Inc()
}

func (m *Metrics) ObserveDuration(direction string, seconds float64) {
	m.Duration.WithLabelValues(direction).Observe(seconds)
}

// CacheHit and CacheMiss let Metrics observe the template loader directly.
func (m *Metrics) CacheHit(kind string) {
	m.TemplateCacheHits.WithLabelValues(kind).Inc()
}

func (m *Metrics) CacheMiss(kind string) {
	m.TemplateCacheMisses.WithLabelValues(kind).Inc()
}
