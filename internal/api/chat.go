package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quangtran/monngon/backend/internal/middleware"
	"github.com/quangtran/monngon/backend/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
	rateLimiter *middleware.RateLimiter
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func NewChatHandlerWithRateLimit(chatService *service.ChatService, limiter *middleware.RateLimiter) *ChatHandler {
	return &ChatHandler{chatService: chatService, rateLimiter: limiter}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/chat")
	{
		if h.rateLimiter != nil {
			chat.POST("", h.rateLimiter.RateLimitMiddleware(), h.Chat)
		} else {
			chat.POST("", h.Chat)
		}
		chat.GET("/:sessionID/history", h.History)
	}
}

type chatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := uuid.New()
	if req.SessionID != "" {
		parsed, err := uuid.Parse(req.SessionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
			return
		}
		sessionID = parsed
	}

	resp := h.chatService.Respond(c.Request.Context(), sessionID, req.Message)
	c.JSON(http.StatusOK, resp)
}

func (h *ChatHandler) History(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"history":    h.chatService.History(sessionID),
	})
}
