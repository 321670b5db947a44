package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eurobot-backend/internal/api/routes"
	"eurobot-backend/internal/config"
	"eurobot-backend/internal/database"
	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/logger"
	"eurobot-backend/internal/metrics"
	"eurobot-backend/internal/repository"
	"eurobot-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "eurobot-backend/docs" // This is needed for swag
)

//	@title			Eurobot Results API
//	@version		1.0
//	@description	REST API over Eurobot competition results: teams, matches, rankings and series.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:5000
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the admin JWT. Only enforced when ADMIN_JWT_SECRET is set.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		logger.WithComponent("server").WithError(err).Fatal("Server exited")
	}
}

// run serves until ctx is cancelled or the listener fails. Every resource it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("server")

	// Initialize database
	db, err := database.ConnectWithRetry(cfg.DatabaseURL, nil, 30, time.Second)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	recorder := metrics.NewRecorder()
	ingester := ingest.NewIngester(ingest.Stores{
		Teams:    repository.NewTeamRepository(db),
		Matches:  repository.NewMatchRepository(db),
		Rankings: repository.NewRankingRepository(db),
		Series:   repository.NewSerieRepository(db),
	}, ingest.Options{
		DataDir:          cfg.DataDir,
		LiveStreamConfig: cfg.LiveStreamConfig,
		SerieLocation:    cfg.SerieLocation,
		Recorder:         recorder,
	})

	if cfg.SeedOnBoot {
		seedIfEmpty(repository.NewTeamRepository(db), ingester, log)
	}

	if cfg.ReseedCron != "" {
		sched, err := scheduler.New(cfg.ReseedCron, ingester, 5*time.Minute)
		if err != nil {
			return fmt.Errorf("failed to configure reseed scheduler: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Reseeder: ingester,
		Metrics:  recorder,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	return nil
}

// seedIfEmpty runs one ingestion when no team exists yet. Failures are logged and the server keeps starting.
func seedIfEmpty(teams repository.TeamRepositoryInterface, ingester *ingest.Ingester, log *logger.Logger) {
	count, err := teams.Count()
	if err != nil {
		log.WithError(err).Warn("Could not count teams, skipping boot seed")
		return
	}
	if count > 0 {
		log.WithField("teams", count).Info("Database already seeded")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := ingester.Run(ctx)
	if err != nil {
		log.WithError(err).Warn("Boot seed failed, serving without data")
		return
	}
	log.WithFields(map[string]interface{}{
		"series":   report.SeriesWritten,
		"teams":    report.Teams,
		"matches":  report.Matches,
		"rankings": report.Rankings,
	}).Info("Boot seed completed")
}
