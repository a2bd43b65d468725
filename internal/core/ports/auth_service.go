package ports

import (
	"context"
	"time"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// RegisterInput carries a local registration submission.
type RegisterInput struct {
	Username    string
	Password    string
	Email       string
	DisplayName string
	Company     string
}

// CreateClientInput carries an admin-provisioned client account.
type CreateClientInput struct {
	Username    string
	Password    string
	Email       string
	DisplayName string
	Company     string
}

// ExternalIdentity is a verified identity returned by the federated provider.
type ExternalIdentity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityVerifier exchanges a federated ID token for a verified identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*ExternalIdentity, error)
}

// Mailer delivers transactional mail. Delivery is best-effort; callers must
// not fail their operation when it errors.
type Mailer interface {
	SendVerification(ctx context.Context, email, token string) error
}

// Session is the server-side state referenced by the HTTP-only cookie.
type Session struct {
	ID       string `json:"-"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionStore persists sessions keyed by opaque ids.
type SessionStore interface {
	Create(ctx context.Context, userID, username, role string) (*Session, error)
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// AuthService implements registration, login, email verification and
// federated sign-in.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*domain.User, error)
	VerifyEmail(ctx context.Context, token string) (*domain.User, error)
	ResendVerification(ctx context.Context, email string) error
	FederatedLogin(ctx context.Context, idToken string) (*domain.User, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListClients(ctx context.Context) ([]*domain.User, error)
}
