package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/config"
	"github.com/maxviazov/pagewindow/internal/handler"
	"github.com/maxviazov/pagewindow/internal/logger"
	"github.com/maxviazov/pagewindow/internal/metrics"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	// Load application config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.App.Env
	}
	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("", reg)

	svc, err := service.NewWindowService(service.Settings{
		SortParameter: cfg.Pagination.SortParameter,
		DefaultOrder:  cfg.Pagination.Order(),
	}, m, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("window service configuration rejected")
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := handler.NewEngine(handler.Deps{
		Service:     svc,
		Logger:      appLogger,
		Metrics:     m,
		Gatherer:    reg,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("✅ Server stopped")
}
