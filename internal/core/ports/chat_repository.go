package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// ChatRepository defines persistence operations for chat sessions and messages.
type ChatRepository interface {
	CreateSession(ctx context.Context, s *domain.ChatSession) (*domain.ChatSession, error)
	FindSession(ctx context.Context, id string) (*domain.ChatSession, error)
	AppendMessage(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
	ListMessages(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error)
}
