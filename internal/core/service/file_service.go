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

// FileService implements the two-step upload flow: bytes to object storage,
// then a metadata row. There is no compensating delete when the second step
// fails; the stored object is simply unreferenced.
type FileService struct {
	files    ports.FileRepository
	projects ports.ProjectRepository
	storage  ports.FileStorage
	log      zerolog.Logger
}

func NewFileService(files ports.FileRepository, projects ports.ProjectRepository, storage ports.FileStorage, log zerolog.Logger) *FileService {
	return &FileService{files: files, projects: projects, storage: storage, log: log}
}

func (s *FileService) Upload(ctx context.Context, req ports.Requester, projectID string, input ports.UploadInput) (*domain.ProjectFile, error) {
	if err := s.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("projects/%s/%s-%s", projectID, randomToken()[:8], input.Name)
	url, err := s.storage.Put(ctx, key, input.ContentType, input.Size, input.Body)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", projectID).Str("name", input.Name).Msg("object storage upload failed")
		return nil, err
	}

	file, err := s.files.Create(ctx, &domain.ProjectFile{
		ProjectID:   projectID,
		Name:        input.Name,
		Description: input.Description,
		FileURL:     url,
		FileType:    input.ContentType,
		FileSize:    input.Size,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.UploadsTotal.Inc()
	s.log.Info().Str("project_id", projectID).Str("file_id", file.ID).Int64("size", file.FileSize).Msg("file uploaded")
	return file, nil
}

func (s *FileService) List(ctx context.Context, req ports.Requester, projectID string) ([]*domain.ProjectFile, error) {
	if err := s.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}
	return s.files.ListByProject(ctx, projectID)
}

// Delete removes the metadata row. The stored object is left behind;
// storage garbage collection is handled outside this service.
func (s *FileService) Delete(ctx context.Context, req ports.Requester, fileID string) error {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return err
	}

	project, err := s.projects.FindByID(ctx, file.ProjectID)
	if err != nil {
		return err
	}
	if project.OwnerID != req.UserID {
		return domain.ErrForbidden
	}

	return s.files.Delete(ctx, fileID)
}

func (s *FileService) authorize(ctx context.Context, req ports.Requester, projectID string) error {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !req.Admin() && project.OwnerID != req.UserID {
		return domain.ErrForbidden
	}
	return nil
}
