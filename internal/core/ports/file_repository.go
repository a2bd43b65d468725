package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// FileRepository defines persistence operations for project file metadata.
type FileRepository interface {
	Create(ctx context.Context, f *domain.ProjectFile) (*domain.ProjectFile, error)
	FindByID(ctx context.Context, id string) (*domain.ProjectFile, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.ProjectFile, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}
