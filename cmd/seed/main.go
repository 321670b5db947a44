package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"eurobot-backend/internal/config"
	"eurobot-backend/internal/database"
	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/logger"
	"eurobot-backend/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// Loads the CSV exports from DATA_DIR into the database, replacing what is there, and prints the run report.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stderr)
	log := logger.WithComponent("seed")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := database.ConnectWithRetry(cfg.DatabaseURL, &database.Options{
		LogLevel: gormlogger.Silent,
	}, 60, time.Second)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer database.Close(db)

	ingester := ingest.NewIngester(ingest.Stores{
		Teams:    repository.NewTeamRepository(db),
		Matches:  repository.NewMatchRepository(db),
		Rankings: repository.NewRankingRepository(db),
		Series:   repository.NewSerieRepository(db),
	}, ingest.Options{
		DataDir:          cfg.DataDir,
		LiveStreamConfig: cfg.LiveStreamConfig,
		SerieLocation:    cfg.SerieLocation,
	})

	report, runErr := ingester.Run(context.Background())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.WithError(err).Error("Failed to print report")
	}

	if runErr != nil {
		log.WithError(runErr).Fatal("Seeding failed")
	}
	log.Info("Seeding completed")
}
