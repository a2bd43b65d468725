package ports

import (
	"context"
	"time"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// CreateMilestoneInput carries a new milestone under a project.
type CreateMilestoneInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	OrderIndex  int
}

// MilestoneTimeline is a project's milestones plus the derived progress
// percentage (completed count over total count, 0 when empty).
type MilestoneTimeline struct {
	Milestones []*domain.Milestone
	Progress   int
}

// MilestoneService defines use-case operations for project milestones.
type MilestoneService interface {
	List(ctx context.Context, req Requester, projectID string) (*MilestoneTimeline, error)
	Create(ctx context.Context, req Requester, projectID string, input CreateMilestoneInput) (*domain.Milestone, error)
	UpdateStatus(ctx context.Context, req Requester, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error)
}
