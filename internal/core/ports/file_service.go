package ports

import (
	"context"
	"io"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// FileStorage stores raw file bytes in external object storage and returns a
// publicly resolvable URL.
type FileStorage interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
}

// UploadInput carries one multipart file upload.
type UploadInput struct {
	Name        string
	Description string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileService defines use-case operations for project files.
type FileService interface {
	Upload(ctx context.Context, req Requester, projectID string, input UploadInput) (*domain.ProjectFile, error)
	List(ctx context.Context, req Requester, projectID string) ([]*domain.ProjectFile, error)
	Delete(ctx context.Context, req Requester, fileID string) error
}
