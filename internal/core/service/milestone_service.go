package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// MilestoneService implements milestone reads and writes scoped to a project
// the requester may access.
type MilestoneService struct {
	milestones ports.MilestoneRepository
	projects   ports.ProjectRepository
	log        zerolog.Logger
}

func NewMilestoneService(milestones ports.MilestoneRepository, projects ports.ProjectRepository, log zerolog.Logger) *MilestoneService {
	return &MilestoneService{milestones: milestones, projects: projects, log: log}
}

// List returns a project's milestones in timeline order plus the derived
// progress percentage.
func (s *MilestoneService) List(ctx context.Context, req ports.Requester, projectID string) (*ports.MilestoneTimeline, error) {
	if err := s.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	list, err := s.milestones.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, m := range list {
		if m.Status == domain.MilestoneCompleted {
			completed++
		}
	}
	progress := 0
	if len(list) > 0 {
		progress = completed * 100 / len(list)
	}

	return &ports.MilestoneTimeline{Milestones: list, Progress: progress}, nil
}

func (s *MilestoneService) Create(ctx context.Context, req ports.Requester, projectID string, input ports.CreateMilestoneInput) (*domain.Milestone, error) {
	if err := s.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.milestones.Create(ctx, &domain.Milestone{
		ProjectID:   projectID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.MilestonePending,
		DueDate:     input.DueDate,
		OrderIndex:  input.OrderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// UpdateStatus advances a milestone manually. Entering completed stamps
// CompletedAt.
func (s *MilestoneService) UpdateStatus(ctx context.Context, req ports.Requester, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error) {
	m, err := s.milestones.FindByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, req, m.ProjectID); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if status == domain.MilestoneCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	if err := s.milestones.UpdateStatus(ctx, milestoneID, status, completedAt); err != nil {
		return nil, err
	}

	m.Status = status
	m.CompletedAt = completedAt
	return m, nil
}

// authorize resolves the parent project and applies the ownership rule:
// admins see everything, clients only their own projects.
func (s *MilestoneService) authorize(ctx context.Context, req ports.Requester, projectID string) error {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !req.Admin() && project.OwnerID != req.UserID {
		return domain.ErrForbidden
	}
	return nil
}
