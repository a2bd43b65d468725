package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

const chatFallbackReply = "Sorry, I could not process that right now. Please try again or use the contact form."

// ChatService stores visitor conversations and fetches assistant replies
// from the external completion backend.
type ChatService struct {
	repo      ports.ChatRepository
	completer ports.Completer
	log       zerolog.Logger
}

func NewChatService(repo ports.ChatRepository, completer ports.Completer, log zerolog.Logger) *ChatService {
	return &ChatService{repo: repo, completer: completer, log: log}
}

// Send stores the visitor turn, asks the completion backend for a reply and
// stores that too. A failed completion degrades to a canned fallback so the
// widget always receives an assistant turn.
func (s *ChatService) Send(ctx context.Context, sessionID, visitorID, content string) (*ports.ChatReply, error) {
	if sessionID == "" {
		session, err := s.repo.CreateSession(ctx, &domain.ChatSession{
			VisitorID: visitorID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, err
		}
		sessionID = session.ID
	} else if _, err := s.repo.FindSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if _, err := s.repo.AppendMessage(ctx, &domain.ChatMessage{
		SessionID: sessionID,
		Role:      domain.ChatRoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	history, err := s.repo.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reply, err := s.completer.Complete(ctx, history)
	if err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("completion failed, using fallback")
		reply = chatFallbackReply
	}

	msg, err := s.repo.AppendMessage(ctx, &domain.ChatMessage{
		SessionID: sessionID,
		Role:      domain.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return &ports.ChatReply{SessionID: sessionID, Message: msg}, nil
}
