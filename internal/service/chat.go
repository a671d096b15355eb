package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/internal/chat"
	"github.com/quangtran/monngon/backend/internal/nlp"
)

// ChatService handles conversational dish requests.
type ChatService struct {
	processor *nlp.Processor
	matcher   *chat.Matcher
	chatbot   *chat.Chatbot
}

// NewChatService creates a new ChatService instance.
func NewChatService(logger *zap.Logger) *ChatService {
	processor := nlp.NewProcessor(logger)
	matcher := chat.NewMatcher(processor, logger)
	return &ChatService{
		processor: processor,
		matcher:   matcher,
		chatbot:   chat.NewChatbot(processor, matcher, logger),
	}
}

// SetCatalog replaces the menu snapshot the matcher searches.
func (s *ChatService) SetCatalog(catalog []nlp.Recipe) {
	s.matcher.SetCatalog(catalog)
}

// Respond runs one chat turn for the session.
func (s *ChatService) Respond(ctx context.Context, sessionID uuid.UUID, text string) chat.Response {
	return s.chatbot.GenerateResponse(ctx, sessionID, text)
}

// History returns the transcript recorded for the session.
func (s *ChatService) History(sessionID uuid.UUID) []chat.Turn {
	return s.chatbot.History(sessionID)
}
