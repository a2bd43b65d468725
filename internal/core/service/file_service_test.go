package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// stubStorage records puts and returns deterministic URLs.
type stubStorage struct {
	keys []string
	err  error
}

func (s *stubStorage) Put(_ context.Context, key, _ string, _ int64, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	// drain like a real upload would
	_, _ = io.Copy(io.Discard, body)
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func newFileFixture() (*FileService, *stubFileRepo, *stubProjectRepo, *stubStorage) {
	files := newStubFileRepo()
	projects := newStubProjectRepo()
	storage := &stubStorage{}
	return NewFileService(files, projects, storage, discardLogger), files, projects, storage
}

func uploadInput() ports.UploadInput {
	return ports.UploadInput{
		Name:        "brief.pdf",
		Description: "project brief",
		ContentType: "application/pdf",
		Size:        12,
		Body:        strings.NewReader("PDF-CONTENTS"),
	}
}

func TestFileService_Upload_StoresBytesThenMetadata(t *testing.T) {
	svc, files, projects, storage := newFileFixture()
	p := seedProject(projects, "user_1", domain.StatusInProgress)

	file, err := svc.Upload(context.Background(), asOwner, p.ID, uploadInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(storage.keys) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(storage.keys))
	}
	key := storage.keys[0]
	if !strings.HasPrefix(key, "projects/"+p.ID+"/") || !strings.HasSuffix(key, "-brief.pdf") {
		t.Errorf("unexpected object key: %q", key)
	}

	stored := files.byID[file.ID]
	if stored.Name != "brief.pdf" || stored.FileType != "application/pdf" || stored.FileSize != 12 {
		t.Errorf("metadata mismatch: %+v", stored)
	}
	if stored.FileURL != "https://cdn.example.com/"+key {
		t.Errorf("file url must point at the stored object: %q", stored.FileURL)
	}
	if stored.Description != "project brief" {
		t.Errorf("description lost: %q", stored.Description)
	}
}

func TestFileService_Upload_KeysAreUniquePerUpload(t *testing.T) {
	svc, _, projects, storage := newFileFixture()
	p := seedProject(projects, "user_1", domain.StatusInProgress)

	if _, err := svc.Upload(context.Background(), asOwner, p.ID, uploadInput()); err != nil {
		t.Fatalf("first upload failed: %v", err)
	}
	if _, err := svc.Upload(context.Background(), asOwner, p.ID, uploadInput()); err != nil {
		t.Fatalf("second upload failed: %v", err)
	}
	if storage.keys[0] == storage.keys[1] {
		t.Errorf("same filename must not collide: %q", storage.keys[0])
	}
}

func TestFileService_Upload_StorageFailureWritesNoMetadata(t *testing.T) {
	svc, files, projects, storage := newFileFixture()
	p := seedProject(projects, "user_1", domain.StatusInProgress)
	storage.err = errors.New("bucket unavailable")

	if _, err := svc.Upload(context.Background(), asOwner, p.ID, uploadInput()); err == nil {
		t.Fatal("expected error when storage fails")
	}
	if len(files.byID) != 0 {
		t.Errorf("no metadata row may exist after a failed upload, got %d", len(files.byID))
	}
}

func TestFileService_Upload_OwnershipEnforced(t *testing.T) {
	svc, _, projects, _ := newFileFixture()
	p := seedProject(projects, "user_1", domain.StatusInProgress)

	if _, err := svc.Upload(context.Background(), asOther, p.ID, uploadInput()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Upload(context.Background(), asAdmin, p.ID, uploadInput()); err != nil {
		t.Errorf("admin upload must be allowed: %v", err)
	}
}

func TestFileService_Delete_OwnerOnly(t *testing.T) {
	svc, files, projects, _ := newFileFixture()
	p := seedProject(projects, "user_1", domain.StatusInProgress)
	file, err := svc.Upload(context.Background(), asOwner, p.ID, uploadInput())
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := svc.Delete(context.Background(), asOther, file.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), asOwner, file.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := files.byID[file.ID]; ok {
		t.Error("metadata row must be gone")
	}
}
