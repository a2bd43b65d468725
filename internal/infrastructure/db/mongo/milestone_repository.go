package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

const collectionMilestones = "milestones"

type MilestoneRepository struct {
	col *mongo.Collection
}

func NewMilestoneRepository(db *mongo.Database) *MilestoneRepository {
	return &MilestoneRepository{col: db.Collection(collectionMilestones)}
}

// Create inserts a new milestone document.
func (r *MilestoneRepository) Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert milestone: %w", err)
	}
	return m, nil
}

func (r *MilestoneRepository) FindByID(ctx context.Context, id string) (*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Milestone
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("find milestone: %w", err)
	}
	return &m, nil
}

// ListByProject returns a project's milestones ordered by order_index.
func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order_index", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer cur.Close(ctx)

	var milestones []*domain.Milestone
	for cur.Next(ctx) {
		var m domain.Milestone
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode milestone: %w", err)
		}
		milestones = append(milestones, &m)
	}
	return milestones, cur.Err()
}

// UpdateStatus sets the status; completed_at is written when non-nil and
// cleared otherwise.
func (r *MilestoneRepository) UpdateStatus(ctx context.Context, id string, status domain.MilestoneStatus, completedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if completedAt != nil {
		set["completed_at"] = completedAt.UTC()
	} else {
		update["$unset"] = bson.M{"completed_at": ""}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update milestone status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMilestoneNotFound
	}
	return nil
}

// DeleteByProject removes all milestones belonging to a project.
func (r *MilestoneRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete project milestones: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the milestones collection.
func (r *MilestoneRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "order_index", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
