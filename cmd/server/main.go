package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"hiebus/internal/codec"
	codecmetrics "hiebus/internal/codec/metrics"
	"hiebus/internal/codec/template"
	"hiebus/internal/message"
	"hiebus/internal/platform/config"
	"hiebus/internal/platform/health"
	"hiebus/internal/platform/logger"
	"hiebus/internal/platform/metrics"
	"hiebus/internal/platform/tracer"
	httptransport "hiebus/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Packing logic lives in internal/codec.
func main() {
	configPath := flag.String("config", os.Getenv("HIEBUS_CONFIG"), "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.Instance.Name)

	log.Info("initializing hiebus",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"instance_address", cfg.Instance.Address,
		"instance_name", cfg.Instance.Name,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	codecMetrics := codecmetrics.New(reg)

	loaderOpts := []template.Option{
		template.WithCache(cfg.TemplateCache),
		template.WithObserver(codecMetrics),
	}
	if cfg.TemplateDir != "" {
		loaderOpts = append(loaderOpts, template.WithDir(cfg.TemplateDir))
	}
	loader := template.New(loaderOpts...)

	var skeletons []string
	for _, k := range message.Kinds() {
		if k.Templated() {
			skeletons = append(skeletons, k.String())
		}
	}
	if err := loader.Check(skeletons...); err != nil {
		return fmt.Errorf("skeletons: %w", err)
	}

	c := codec.New(
		codec.WithLogger(log),
		codec.WithMetrics(codecMetrics),
		codec.WithTracer(tracer.NewOTel()),
		codec.WithLoader(loader),
		codec.WithNodeIdentity(cfg.Instance.Node()),
	)

	hc := health.New(cfg.Environment, cfg.Instance.Name)
	hc.RegisterCheck("templates", func(context.Context) error {
		return loader.Check(skeletons...)
	})

	handler := httptransport.NewHandler(c, log)
	router := httptransport.NewRouter(handler, hc, metrics.New(reg), reg, log)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
