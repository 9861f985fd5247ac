package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hiebus/internal/platform/health"
	"hiebus/internal/platform/metrics"
	"hiebus/internal/platform/middleware"
)

const requestTimeout = 30 * time.Second

// NewRouter wires the message, health and metrics endpoints with middleware.
func NewRouter(h *Handler, hc *health.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}
	r.Use(middleware.Timeout(requestTimeout))

	hc.Register(r)
	h.Register(r)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
