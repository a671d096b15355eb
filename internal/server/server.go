package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/internal/api"
	"github.com/quangtran/monngon/backend/internal/database"
	"github.com/quangtran/monngon/backend/internal/middleware"
	"github.com/quangtran/monngon/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, redisClient *redis.Client, engine *service.EngineService, chatService *service.ChatService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.Default()
	router.Use(middleware.CORS())

	api.SetupAPI(router, db, redisClient, engine, chatService)

	return &Server{
		router: router,
		logger: logger,
	}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM, then shuts down
// gracefully.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
