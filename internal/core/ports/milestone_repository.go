package ports

import (
	"context"
	"time"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// MilestoneRepository defines persistence operations for milestones.
type MilestoneRepository interface {
	Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error)
	FindByID(ctx context.Context, id string) (*domain.Milestone, error)
	// ListByProject returns a project's milestones ordered by order_index.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
	// UpdateStatus sets the status; completedAt is written when non-nil.
	UpdateStatus(ctx context.Context, id string, status domain.MilestoneStatus, completedAt *time.Time) error
	DeleteByProject(ctx context.Context, projectID string) error
}
