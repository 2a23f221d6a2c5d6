// Package main is the entry point for the MGNREGA district performance API.
//
// The service serves a read-only catalog of states and districts, monthly
// MGNREGA performance records per district, and the static UI translation
// table. Storage is SQLite or MongoDB, chosen by STORAGE_BACKEND. A synthetic
// dataset is seeded on first use.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aftab0khan021/mgnrega/internal/config"
	"github.com/aftab0khan021/mgnrega/internal/di"
	"github.com/aftab0khan021/mgnrega/internal/scheduler"
	"github.com/aftab0khan021/mgnrega/internal/server"
	"github.com/aftab0khan021/mgnrega/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Pretty:  cfg.DevMode,
		Service: "mgnrega",
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("backend", cfg.StorageBackend).
		Str("db_name", cfg.DBName).
		Msg("Starting MGNREGA API")

	sched := scheduler.New(log)

	// Databases, stores, services and maintenance jobs
	container, jobs, err := di.Wire(cfg, sched, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	if cfg.Seed.OnStartup {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 60*time.Second)
		seeded, err := container.Seeder.EnsureSeeded(seedCtx)
		seedCancel()
		if err != nil {
			// Not fatal: the first states request retries the seed
			log.Error().Err(err).Msg("Startup seed failed")
		} else {
			log.Info().Bool("seeded", seeded).Msg("Startup seed check complete")
		}
	}

	// One health pass before serving, so a corrupt store shows up in the startup log
	if err := sched.RunNow(jobs.CheckStoreHealth); err != nil {
		log.Error().Err(err).Msg("Startup store health check failed")
	}

	srv := server.New(server.Config{
		Log:       log,
		Config:    cfg,
		Container: container,
		Scheduler: sched,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	sched.Start()
	log.Info().
		Strs("jobs", sched.Jobs()).
		Bool("wal_checkpoints", jobs.CheckWALCheckpoints != nil).
		Msg("Scheduler started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	sched.Stop()

	// Give in-flight requests up to 10 seconds
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
