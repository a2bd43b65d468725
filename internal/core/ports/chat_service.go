package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// Completer produces an assistant reply for a conversation. The actual text
// generation is an opaque external call.
type Completer interface {
	Complete(ctx context.Context, history []*domain.ChatMessage) (string, error)
}

// ChatReply is returned to the widget after a visitor message is processed.
type ChatReply struct {
	SessionID string
	Message   *domain.ChatMessage
}

// ChatService stores visitor conversations and obtains assistant replies.
type ChatService interface {
	// Send creates the session when sessionID is empty.
	Send(ctx context.Context, sessionID, visitorID, content string) (*ChatReply, error)
}
