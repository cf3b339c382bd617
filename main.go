package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"sensor-readings-service/internal/api"
	"sensor-readings-service/internal/config"
	"sensor-readings-service/internal/db"
	"sensor-readings-service/internal/kafka"
	"sensor-readings-service/internal/metrics"
	"sensor-readings-service/internal/processors/ingester"
)

func main() {
	configFile := flag.String("config", "", "path to a config file (default: search for config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.InfoContext(ctx, "Starting service...", "addr", cfg.HTTP.Addr, "driver", cfg.Store.Driver)

	store, err := db.Init(ctx, db.Config{
		Driver: cfg.Store.Driver,
		DSN:    cfg.Store.DSN,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Failed to initialise store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	metrics.Init()

	apiCfg := api.Config{DB: store}
	var publisher *kafka.Publisher
	if cfg.Kafka.Enabled() && cfg.Kafka.CreatedTopic != "" {
		publisher = kafka.NewPublisher(kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CreatedTopic,
		}))
		apiCfg.Events = publisher
	}

	wg := sync.WaitGroup{}
	var wIngester *ingester.Ingester
	if cfg.Kafka.Enabled() && cfg.Kafka.IngestTopic != "" {
		wIngester = ingester.New(ingester.Config{
			Brokers:         cfg.Kafka.Brokers,
			ConsumerGroupID: cfg.Kafka.IngestGroup,
			ConsumerTopic:   cfg.Kafka.IngestTopic,
			Store:           store,
		})
		wg.Go(func() {
			wIngester.Run(ctx)
		})
	}

	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.NewRouter(api.New(apiCfg), api.RouterConfig{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RPS:            cfg.RateLimit.RPS,
			Burst:          cfg.RateLimit.Burst,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	wg.Wait()
	if wIngester != nil {
		wIngester.Close(shutdownCtx)
	}
	if publisher != nil {
		publisher.Close()
	}
}
