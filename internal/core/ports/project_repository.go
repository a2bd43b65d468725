package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// ProjectPatch carries the optional fields of a partial project update.
// Nil pointers leave the stored value untouched.
type ProjectPatch struct {
	Name        *string
	Type        *string
	Description *string
	Status      *domain.ProjectStatus
	StartDate   *string // RFC 3339 date, empty clears
	EndDate     *string
	Budget      *string
	Metadata    *domain.ProjectMetadata
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByOwner returns all projects owned by ownerID, insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	// ListAll returns every project, unscoped (admin view).
	ListAll(ctx context.Context) ([]*domain.Project, error)
	// UpdateStatus sets the status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) error
	// Update applies a partial field merge and bumps updated_at.
	Update(ctx context.Context, id string, patch ProjectPatch) error
	Delete(ctx context.Context, id string) error
}
