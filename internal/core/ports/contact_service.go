package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// SubmitContactInput carries a public lead-capture submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// ContactService defines use-case operations for the lead inbox.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	MarkRead(ctx context.Context, id string) error
}
