package main

import (
	"context"
	"customer-catalog/internal/api"
	"customer-catalog/internal/api/codec"
	mw "customer-catalog/internal/api/middleware"
	"customer-catalog/internal/batch"
	"customer-catalog/internal/config"
	"customer-catalog/internal/domain/customer"
	"customer-catalog/internal/infrastructure/logging"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	defaultIntegrityCheckSchedule = "@every 5m"
	defaultIntegrityCheckTimeout  = 30 * time.Second
)

// @title Customer Catalog API
// @version 1.0
// @description Read-only customer catalog served as JSON or protobuf.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := initializeApp()

	store, catalogService := initializeServices(cfg, logger)

	codecs, err := codec.NewRegistry()
	if err != nil {
		logger.Error("Failed to build wire codecs", "error", err)
		os.Exit(1)
	}

	integrityJob := batch.NewCatalogIntegrityJob(context.Background(), store, logger)
	logger.Info("Catalog fingerprint recorded", "fingerprint", integrityJob.Baseline())

	cronScheduler := startBatchJobs(cfg, logger, integrityJob)
	router, limiter := api.SetupRouter(catalogService, codecs, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, limiter, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	logger.Info("Application starting...", "config_source", cfg.Source)

	return cfg, logger
}

func initializeServices(cfg *config.Config, logger *slog.Logger) (*customer.MemoryStore, customer.CatalogService) {
	logger.Info("Seeding reference catalog...",
		"size", cfg.Catalog.Size,
		"first_reference", cfg.Catalog.FirstReference,
	)
	store := customer.NewReferenceStore(cfg.Catalog.Size, cfg.Catalog.FirstReference)
	logger.Info("Reference catalog seeded", "records", store.Count())
	return store, customer.NewCatalogService(store, logger)
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, limiter *mw.RateLimiterMiddleware, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.", "error", err)
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}

	if limiter != nil {
		limiter.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, integrityJob *batch.CatalogIntegrityJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.IntegrityCheckSchedule
	if scheduleSpec == "" {
		scheduleSpec = defaultIntegrityCheckSchedule
		logger.Warn("Integrity check schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := cfg.Batch.IntegrityCheckTimeout
	if jobTimeout <= 0 {
		jobTimeout = defaultIntegrityCheckTimeout
	}

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "CatalogIntegrity")
		jobLogger.Info("Cron triggered: Running catalog integrity check.")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := integrityJob.Run(ctx); runErr != nil {
			jobLogger.Error("Catalog integrity check finished with error", slog.Any("error", runErr))
		} else {
			jobLogger.Info("Catalog integrity check finished successfully.")
		}
	}))
	if err != nil {
		logger.Error("Failed to schedule catalog integrity check", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled catalog integrity check", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}
