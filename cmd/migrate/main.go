// Command migrate creates or updates the database schema.
package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db.DB); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("migrations applied", zap.String("driver", cfg.DBDriver))
}
