package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// ContactRepository defines persistence operations for marketing leads.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	// ListAll returns every lead, newest first.
	ListAll(ctx context.Context) ([]*domain.Contact, error)
	MarkRead(ctx context.Context, id string) error
}
