// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apollotrainer/internal/config"
	"apollotrainer/internal/measurements"
	"apollotrainer/internal/members"
	"apollotrainer/internal/memberships"
	"apollotrainer/internal/payments"
	"apollotrainer/internal/reports"
	"apollotrainer/internal/server"
	"apollotrainer/internal/storage"
	"apollotrainer/internal/telemetry"
	"apollotrainer/internal/users"
	"apollotrainer/internal/workouts"
	"apollotrainer/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics, shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up telemetry")
	}

	db, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.ApplySchema {
		if err := storage.ApplySchema(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		logger.Info().Msg("schema applied")
	}

	router := server.NewRouter(ctx, server.Deps{
		Members:      members.NewRepository(db),
		Memberships:  memberships.NewRepository(db),
		Payments:     payments.NewRepository(db),
		Plans:        workouts.NewPlanRepository(db),
		Assignments:  workouts.NewAssignmentRepository(db),
		Measurements: measurements.NewRepository(db),
		Users:        users.NewRepository(db),
		Reports:      reports.NewService(db),
		Ping:         db.PingContext,
		Metrics:      metrics,
		RateLimit:    cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting apollotrainer server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("telemetry shutdown failed")
	}
}
