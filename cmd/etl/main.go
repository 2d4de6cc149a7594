package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar-etl/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/metar-etl/internal/adapter/kafka"
	"github.com/couchcryptid/metar-etl/internal/adapter/live"
	"github.com/couchcryptid/metar-etl/internal/adapter/noaa"
	"github.com/couchcryptid/metar-etl/internal/config"
	"github.com/couchcryptid/metar-etl/internal/observability"
	"github.com/couchcryptid/metar-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Station lookups serve station-only messages and GET /v1/stations/{icao}.
	client := noaa.NewClient(cfg.NOAABaseURL, cfg.NOAATimeout, metrics, logger)
	fetcher := noaa.NewCachedFetcher(client, cfg.NOAACacheSize, cfg.NOAACacheTTL, clockwork.NewRealClock(), metrics)
	logger.Info("noaa station feed configured",
		"base_url", cfg.NOAABaseURL,
		"cache_size", cfg.NOAACacheSize,
		"cache_ttl", cfg.NOAACacheTTL,
	)

	hub := live.NewHub(cfg.LiveFeedBuffer, metrics, logger)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(fetcher, logger, metrics)
	loader := pipeline.NewFanoutLoader(writer, hub)

	p := pipeline.New(reader, transformer, loader, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, fetcher, hub, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
