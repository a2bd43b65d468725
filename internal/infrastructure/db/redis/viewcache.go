package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewTTL = 5 * time.Minute

// ProjectViewCache caches the two rendered project list views in Redis.
// Key format: views:projects:owner:<owner_id> and views:projects:admin.
// The TTL bounds staleness if an invalidation is ever lost; correctness
// comes from Invalidate dropping both keys on every project mutation.
type ProjectViewCache struct {
	client *redis.Client
}

// NewProjectViewCache creates a ProjectViewCache wrapping the given client.
func NewProjectViewCache(client *redis.Client) *ProjectViewCache {
	return &ProjectViewCache{client: client}
}

// GetOwner returns an owner's cached list view, or (nil, false) on a miss.
// Redis errors count as misses; the caller falls through to the database.
func (c *ProjectViewCache) GetOwner(ctx context.Context, ownerID string) ([]byte, bool) {
	return c.get(ctx, ownerKey(ownerID))
}

// GetAdmin returns the cached global list view, or (nil, false) on a miss.
func (c *ProjectViewCache) GetAdmin(ctx context.Context) ([]byte, bool) {
	return c.get(ctx, adminKey)
}

// SetOwner stores an owner's list view. Failures are silently dropped; the
// cache is an optimisation, never a source of truth.
func (c *ProjectViewCache) SetOwner(ctx context.Context, ownerID string, payload []byte) {
	c.client.Set(ctx, ownerKey(ownerID), payload, viewTTL)
}

// SetAdmin stores the global list view.
func (c *ProjectViewCache) SetAdmin(ctx context.Context, payload []byte) {
	c.client.Set(ctx, adminKey, payload, viewTTL)
}

// Invalidate drops the admin view and, when ownerID is non-empty, that
// owner's view in the same call.
func (c *ProjectViewCache) Invalidate(ctx context.Context, ownerID string) {
	keys := []string{adminKey}
	if ownerID != "" {
		keys = append(keys, ownerKey(ownerID))
	}
	c.client.Del(ctx, keys...)
}

func (c *ProjectViewCache) get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// transient errors count as misses too
		return nil, false
	}
	return payload, true
}

const adminKey = "views:projects:admin"

func ownerKey(ownerID string) string {
	return "views:projects:owner:" + ownerID
}
