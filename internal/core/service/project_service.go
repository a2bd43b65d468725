package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/api/metrics"
	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// ProjectService implements the project lifecycle: client-side creation,
// role-scoped reads, admin transitions, and the paired invalidation of the
// owner and admin list views on every mutation.
type ProjectService struct {
	projects   ports.ProjectRepository
	milestones ports.MilestoneRepository
	files      ports.FileRepository
	views      ports.ProjectViewCache
	notifier   ports.Notifier
	log        zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	milestones ports.MilestoneRepository,
	files ports.FileRepository,
	views ports.ProjectViewCache,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		milestones: milestones,
		files:      files,
		views:      views,
		notifier:   notifier,
		log:        log,
	}
}

// Create inserts a new project owned by ownerID. The lifecycle always starts
// at pending regardless of anything the client submitted; admins are notified
// of the new request and both list views are invalidated.
func (s *ProjectService) Create(ctx context.Context, ownerID string, input ports.CreateProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		OwnerID:     ownerID,
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		Status:      domain.StatusPending,
		Budget:      input.Budget,
		Metadata:    input.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create project")
		return nil, err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(created.Type).Inc()
	s.log.Info().Str("project_id", created.ID).Str("owner_id", ownerID).Msg("project created")

	s.notifier.NotifyAdmins(ctx,
		"New project request",
		fmt.Sprintf("%q is awaiting review.", created.Name),
		domain.NotificationInfo,
		"/admin/projects/"+created.ID,
	)
	s.invalidate(ctx, ownerID)

	return created, nil
}

// ListForOwner returns the owner's project list, served from the view cache
// when fresh.
func (s *ProjectService) ListForOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	if payload, ok := s.views.GetOwner(ctx, ownerID); ok {
		if list, err := decodeProjectList(payload); err == nil {
			metrics.ViewCacheRequestsTotal.WithLabelValues("owner", "hit").Inc()
			return list, nil
		}
	}
	metrics.ViewCacheRequestsTotal.WithLabelValues("owner", "miss").Inc()

	list, err := s.projects.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if payload, err := encodeProjectList(list); err == nil {
		s.views.SetOwner(ctx, ownerID, payload)
	}
	return list, nil
}

// ListAll returns every project (admin view), served from the view cache
// when fresh.
func (s *ProjectService) ListAll(ctx context.Context) ([]*domain.Project, error) {
	if payload, ok := s.views.GetAdmin(ctx); ok {
		if list, err := decodeProjectList(payload); err == nil {
			metrics.ViewCacheRequestsTotal.WithLabelValues("admin", "hit").Inc()
			return list, nil
		}
	}
	metrics.ViewCacheRequestsTotal.WithLabelValues("admin", "miss").Inc()

	list, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := encodeProjectList(list); err == nil {
		s.views.SetAdmin(ctx, payload)
	}
	return list, nil
}

// Get fetches one project. Non-admin requesters may only read projects
// they own.
func (s *ProjectService) Get(ctx context.Context, req ports.Requester, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Admin() && project.OwnerID != req.UserID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

// Update merges partial fields into the project. A status field in the patch
// is a lifecycle transition and is routed through the same guard as the
// dedicated transition path: admin-only and validated against the state
// machine. Both list views are invalidated on success.
func (s *ProjectService) Update(ctx context.Context, req ports.Requester, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Admin() && project.OwnerID != req.UserID {
		return nil, domain.ErrForbidden
	}

	if patch.Status != nil {
		if !req.Admin() {
			return nil, domain.ErrForbidden
		}
		if !project.Status.CanTransitionTo(*patch.Status) {
			metrics.TransitionsRejectedTotal.Inc()
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, project.Status, *patch.Status)
		}
	}

	if err := s.projects.Update(ctx, id, patch); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}

	if patch.Status != nil {
		s.recordTransition(ctx, project, *patch.Status)
	}
	s.invalidate(ctx, project.OwnerID)

	return s.projects.FindByID(ctx, id)
}

// Transition moves a project to the given lifecycle status. Admin-only.
// On success the owning client is notified of the outcome and both list
// views are invalidated.
func (s *ProjectService) Transition(ctx context.Context, req ports.Requester, id string, to domain.ProjectStatus) (*domain.Project, error) {
	if !req.Admin() {
		return nil, domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.Status.CanTransitionTo(to) {
		metrics.TransitionsRejectedTotal.Inc()
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, project.Status, to)
	}

	if err := s.projects.UpdateStatus(ctx, id, to); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Str("to", string(to)).Msg("failed to persist transition")
		return nil, err
	}

	s.recordTransition(ctx, project, to)
	s.invalidate(ctx, project.OwnerID)

	project.Status = to
	return project, nil
}

// Delete removes a project and, application-side, its milestones and file
// metadata. Owner-only.
func (s *ProjectService) Delete(ctx context.Context, req ports.Requester, id string) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if project.OwnerID != req.UserID {
		return domain.ErrForbidden
	}

	// No cross-collection transaction here: a partial failure leaves orphan
	// rows that the next delete attempt cleans up.
	if err := s.milestones.DeleteByProject(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("project_id", id).Msg("milestone cascade failed")
	}
	if err := s.files.DeleteByProject(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("project_id", id).Msg("file metadata cascade failed")
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to delete project")
		return err
	}

	s.log.Info().Str("project_id", id).Str("owner_id", project.OwnerID).Msg("project deleted")
	s.invalidate(ctx, project.OwnerID)
	return nil
}

// recordTransition emits the transition metric, log line and the owner-facing
// notification for a persisted status change.
func (s *ProjectService) recordTransition(ctx context.Context, project *domain.Project, to domain.ProjectStatus) {
	metrics.TransitionsTotal.WithLabelValues(string(to)).Inc()
	s.log.Info().
		Str("project_id", project.ID).
		Str("from", string(project.Status)).
		Str("to", string(to)).
		Msg("project transitioned")

	title, message, ntype := transitionNotice(project.Name, to)
	s.notifier.Notify(ctx, project.OwnerID, title, message, ntype, "/dashboard/projects/"+project.ID)
}

// transitionNotice maps a transition outcome to the owner-facing notification.
func transitionNotice(name string, to domain.ProjectStatus) (title, message, ntype string) {
	switch to {
	case domain.StatusApproved:
		return "Project approved", fmt.Sprintf("%q has been approved. We will be in touch to plan the kickoff.", name), domain.NotificationSuccess
	case domain.StatusRejected:
		return "Project rejected", fmt.Sprintf("%q was not accepted. Contact us for details.", name), domain.NotificationDestructive
	case domain.StatusCompleted:
		return "Project completed", fmt.Sprintf("%q is complete.", name), domain.NotificationSuccess
	default:
		return "Project updated", fmt.Sprintf("%q moved to %s.", name, to), domain.NotificationInfo
	}
}

// invalidate drops the admin view and the owner's view together. Every
// status- or existence-changing mutation must pass through here so neither
// role's dashboard can serve a stale list past the cache TTL.
func (s *ProjectService) invalidate(ctx context.Context, ownerID string) {
	s.views.Invalidate(ctx, ownerID)
	metrics.ViewCacheInvalidationsTotal.WithLabelValues("owner").Inc()
	metrics.ViewCacheInvalidationsTotal.WithLabelValues("admin").Inc()
}
