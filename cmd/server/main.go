package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"menagerie/internal/census"
	censusmetrics "menagerie/internal/census/metrics"
	"menagerie/internal/platform/config"
	"menagerie/internal/platform/httpserver"
	"menagerie/internal/platform/logger"
	"menagerie/internal/platform/metrics"
	"menagerie/internal/platform/middleware"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal/census.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.Config{LogLevel: "info", LogFormat: "text"}).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	source, err := census.OpenStore(cfg.DatasetPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	svc := census.NewService(log, censusmetrics.NewWithRegistry(reg))
	router := newRouter(census.NewHandler(svc, source, log), log, metrics.NewWithRegistry(reg), reg)

	srv := httpserver.New(cfg.Addr, router)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting menagerie", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down menagerie")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRouter(h *census.Handler, log *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Observe(log, m))

	h.Register(r)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}
