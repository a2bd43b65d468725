package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByExternalUID(ctx context.Context, uid string) (*domain.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	// ListByRole returns every user with the given role, insertion order.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
