package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

const collectionFiles = "project_files"

type FileRepository struct {
	col *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{col: db.Collection(collectionFiles)}
}

// Create inserts a new file metadata document.
func (r *FileRepository) Create(ctx context.Context, f *domain.ProjectFile) (*domain.ProjectFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}
	return f, nil
}

func (r *FileRepository) FindByID(ctx context.Context, id string) (*domain.ProjectFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.ProjectFile
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return &f, nil
}

func (r *FileRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.ProjectFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer cur.Close(ctx)

	var files []*domain.ProjectFile
	for cur.Next(ctx) {
		var f domain.ProjectFile
		if err := cur.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode file: %w", err)
		}
		files = append(files, &f)
	}
	return files, cur.Err()
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

// DeleteByProject removes all file metadata belonging to a project.
func (r *FileRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete project files: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the project_files collection.
func (r *FileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
