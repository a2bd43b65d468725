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

const (
	collectionChatSessions = "chat_sessions"
	collectionChatMessages = "chat_messages"
)

type ChatRepository struct {
	sessions *mongo.Collection
	messages *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{
		sessions: db.Collection(collectionChatSessions),
		messages: db.Collection(collectionChatMessages),
	}
}

// CreateSession inserts a new chat session.
func (r *ChatRepository) CreateSession(ctx context.Context, s *domain.ChatSession) (*domain.ChatSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.sessions.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert chat session: %w", err)
	}
	return s, nil
}

func (r *ChatRepository) FindSession(ctx context.Context, id string) (*domain.ChatSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.ChatSession
	if err := r.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find chat session: %w", err)
	}
	return &s, nil
}

// AppendMessage inserts a new message turn.
func (r *ChatRepository) AppendMessage(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert chat message: %w", err)
	}
	return m, nil
}

// ListMessages returns a session's messages in chronological order.
func (r *ChatRepository) ListMessages(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.messages.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer cur.Close(ctx)

	var messages []*domain.ChatMessage
	for cur.Next(ctx) {
		var m domain.ChatMessage
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, cur.Err()
}

// EnsureIndexes creates necessary indexes on both chat collections.
func (r *ChatRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "visitor_id", Value: 1}}},
	}); err != nil {
		return err
	}

	_, err := r.messages.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	return err
}
