package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quangtran/monngon/backend/internal/middleware"
	"github.com/quangtran/monngon/backend/internal/recommend"
	"github.com/quangtran/monngon/backend/internal/service"
)

type RecommendHandler struct {
	engine        *service.EngineService
	chat          *service.ChatService
	reloadLimiter *middleware.RateLimiter
}

func NewRecommendHandler(engine *service.EngineService, chat *service.ChatService) *RecommendHandler {
	return &RecommendHandler{engine: engine, chat: chat}
}

func NewRecommendHandlerWithRateLimit(engine *service.EngineService, chat *service.ChatService, reloadLimiter *middleware.RateLimiter) *RecommendHandler {
	return &RecommendHandler{engine: engine, chat: chat, reloadLimiter: reloadLimiter}
}

func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations/:userID", h.GetRecommendations)
	router.GET("/trends/seasonal", h.GetSeasonalTrends)
	router.GET("/rules", h.GetRules)
	if h.reloadLimiter != nil {
		router.POST("/reload", h.reloadLimiter.RateLimitMiddleware(), h.Reload)
	} else {
		router.POST("/reload", h.Reload)
	}
}

func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	n := recommend.DefaultRecommendations
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
			return
		}
		n = parsed
	}
	season := c.Query("season")

	ids := h.engine.Recommend(c.Request.Context(), userID, season, n)
	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"recipe_ids":      ids,
		"recommendations": h.engine.MenuItems(ids),
	})
}

func (h *RecommendHandler) GetSeasonalTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trends": h.engine.Trends()})
}

func (h *RecommendHandler) GetRules(c *gin.Context) {
	rules := h.engine.Rules()
	limit := len(rules)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"total": len(rules),
		"rules": rules[:limit],
	})
}

func (h *RecommendHandler) Reload(c *gin.Context) {
	if err := h.engine.Reload(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload engine"})
		return
	}
	if h.chat != nil {
		h.chat.SetCatalog(h.engine.Catalog())
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
