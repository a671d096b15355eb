package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/quangtran/monngon/backend/internal/database"
	"github.com/quangtran/monngon/backend/internal/middleware"
	"github.com/quangtran/monngon/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "degraded",
					"error":  "database unreachable",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "MonNgon API is running",
			"version": "v1.0.0",
		})
	}
}

// SetupAPI registers all routes on the router. The redis client is
// optional; without it the write endpoints run unthrottled.
func SetupAPI(router *gin.Engine, db *database.DB, redisClient *redis.Client, engine *service.EngineService, chatService *service.ChatService) {
	router.GET("/health", HealthCheck(db))
	router.GET("/api/health", HealthCheck(db))

	var chatHandler *ChatHandler
	var recommendHandler *RecommendHandler
	if redisClient != nil {
		chatHandler = NewChatHandlerWithRateLimit(chatService, middleware.NewChatRateLimiter(redisClient))
		recommendHandler = NewRecommendHandlerWithRateLimit(engine, chatService, middleware.NewReloadRateLimiter(redisClient))
	} else {
		chatHandler = NewChatHandler(chatService)
		recommendHandler = NewRecommendHandler(engine, chatService)
	}

	v1 := router.Group("/api/v1")
	chatHandler.RegisterRoutes(v1)
	recommendHandler.RegisterRoutes(v1)
}
