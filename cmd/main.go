package main

import (
	"log"
	"os"
	"time"

	"github.com/luo-one/organizer/internal/cli"
	"github.com/luo-one/organizer/internal/config"
	"github.com/luo-one/organizer/internal/database"
	"github.com/luo-one/organizer/internal/logging"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Open(cfg.DatabaseURL, database.Options{
		SlowQueryThreshold: time.Duration(cfg.SlowQueryMillis) * time.Millisecond,
		Logger:             logger,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.ConfigFile != "" {
		logger.Info("Loaded config file", zap.String("path", cfg.ConfigFile))
	}

	// With no arguments the root command serves the web UI
	if err := cli.Execute(db, cfg, logger); err != nil {
		logger.Sync()
		database.Close(db)
		os.Exit(1)
	}
}
