package main

import (
	"context"
	"log"
	"net"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/database"
	"github.com/quangtran/monngon/backend/internal/server"
	"github.com/quangtran/monngon/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	switch {
	case config.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	case config.IsTest():
		gin.SetMode(gin.TestMode)
		logger = zap.NewNop()
	default:
		logger, err = zap.NewDevelopment()
	}
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

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	engine := service.NewEngineService(db.DB, redisClient, cfg, logger)
	chatService := service.NewChatService(logger)

	if err := engine.Reload(context.Background()); err != nil {
		logger.Warn("initial engine build failed, serving empty model", zap.Error(err))
	} else {
		chatService.SetCatalog(engine.Catalog())
	}

	srv := server.NewServer(db, redisClient, engine, chatService, logger)
	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
