package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type MetricsSuite struct {
	suite.Suite
	reg *prometheus.Registry
	m   *Metrics
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsSuite))
}

func (s *MetricsSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()
	s.m = New(s.reg)
}

func (s *MetricsSuite) TestCounters() {
	s.m.RecordPacked("findPerson")
	s.m.RecordPacked("findPerson")
	s.m.RecordUnpacked("logEntry")
	s.m.RecordFailure(DirectionUnpack, "unknown_kind")
	s.m.RecordTemplateDefect("createPerson", "1.3.6.1.4.1.150.2474.11.1.5.7")

	s.Equal(2.0, testutil.ToFloat64(s.m.MessagesPacked.WithLabelValues("findPerson")))
	s.Equal(1.0, testutil.ToFloat64(s.m.MessagesUnpacked.WithLabelValues("logEntry")))
	s.Equal(1.0, testutil.ToFloat64(s.m.Failures.WithLabelValues("unpack", "unknown_kind")))
	s.Equal(1.0, testutil.ToFloat64(s.m.TemplateDefects.WithLabelValues("createPerson", "1.3.6.1.4.1.150.2474.11.1.5.7")))
}

func (s *MetricsSuite) TestCacheObserver() {
	s.m.CacheMiss("findPerson")
	s.m.CacheHit("findPerson")
	s.m.CacheHit("findPerson")

	s.Equal(2.0, testutil.ToFloat64(s.m.TemplateCacheHits.WithLabelValues("findPerson")))
	s.Equal(1.0, testutil.ToFloat64(s.m.TemplateCacheMisses.WithLabelValues("findPerson")))
}

func (s *MetricsSuite) TestDurationIsRegistered() {
	s.m.ObserveDuration(DirectionPack, 0.002)
	s.Equal(1, testutil.CollectAndCount(s.m.Duration, "hiebus_codec_duration_seconds"))
}

func (s *MetricsSuite) TestSeparateRegistries() {
	s.NotPanics(func() {
		New(prometheus.NewRegistry())
	})
}
