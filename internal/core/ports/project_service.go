package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// Requester identifies the authenticated caller of a service operation.
// Services use it to enforce ownership and role checks.
type Requester struct {
	UserID string
	Role   string
}

// Admin reports whether the requester holds the admin role.
func (r Requester) Admin() bool { return r.Role == domain.RoleAdmin }

// CreateProjectInput carries a client's project request submission.
// Any status supplied by the client is ignored; creation always starts
// the lifecycle at pending.
type CreateProjectInput struct {
	Name        string
	Type        string
	Description string
	Budget      string
	Metadata    domain.ProjectMetadata
}

// ProjectViewCache caches the two independently-keyed list views derived from
// the projects collection: each owner's own list and the admin's global list.
// Both views must be invalidated together on any project mutation so that
// neither role can observe a stale status past the next refetch.
type ProjectViewCache interface {
	// GetOwner / GetAdmin return (nil, false) on a miss.
	GetOwner(ctx context.Context, ownerID string) ([]byte, bool)
	GetAdmin(ctx context.Context) ([]byte, bool)
	SetOwner(ctx context.Context, ownerID string, payload []byte)
	SetAdmin(ctx context.Context, payload []byte)
	// Invalidate drops the admin view and, when ownerID is non-empty, that
	// owner's view in the same call.
	Invalidate(ctx context.Context, ownerID string)
}

// ProjectService defines use-case operations for the project lifecycle.
type ProjectService interface {
	Create(ctx context.Context, ownerID string, input CreateProjectInput) (*domain.Project, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	ListAll(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, req Requester, id string) (*domain.Project, error)
	Update(ctx context.Context, req Requester, id string, patch ProjectPatch) (*domain.Project, error)
	// Transition moves a project to the given status. Admin-only; the move is
	// validated against the lifecycle state machine.
	Transition(ctx context.Context, req Requester, id string, to domain.ProjectStatus) (*domain.Project, error)
	Delete(ctx context.Context, req Requester, id string) error
}
