package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AliJone/Gaza/internal/models"
)

// visibleKey is the single key holding the serialized visible listing.
// The listing is small (no pagination) so one key is enough.
const visibleKey = "catalog:entries:visible"

// CatalogCache caches the public visible-entries listing. Moderation
// status changes and bulk loads invalidate it; submissions do not need
// to, since pending entries are never part of the listing.
type CatalogCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewCatalogCache creates a new CatalogCache with the given TTL.
func NewCatalogCache(redis *RedisClient, ttl time.Duration) *CatalogCache {
	return &CatalogCache{redis: redis, ttl: ttl}
}

// cachedEntry is the cache-side shape of an entry. Entry hides
// created_at from API responses, so the cache payload carries it in an
// explicit field to survive the round trip (listing order depends on
// it staying intact).
type cachedEntry struct {
	models.Entry
	CreatedAt time.Time `json:"createdAt"`
}

func encodeEntries(entries []models.Entry) ([]byte, error) {
	cached := make([]cachedEntry, len(entries))
	for i, e := range entries {
		cached[i] = cachedEntry{Entry: e, CreatedAt: e.CreatedAt}
	}
	return json.Marshal(cached)
}

func decodeEntries(raw []byte) ([]models.Entry, error) {
	var cached []cachedEntry
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}
	entries := make([]models.Entry, len(cached))
	for i, c := range cached {
		entries[i] = c.Entry
		entries[i].CreatedAt = c.CreatedAt
	}
	return entries, nil
}

// GetVisible returns the cached listing. The second return value is
// false on a cache miss; cache transport errors are returned so the
// caller can log and fall through to the store.
func (c *CatalogCache) GetVisible(ctx context.Context) ([]models.Entry, bool, error) {
	raw, err := c.redis.Get(ctx, visibleKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	entries, err := decodeEntries([]byte(raw))
	if err != nil {
		// Corrupt payload: treat as a miss and let the next Set overwrite it.
		return nil, false, nil
	}
	return entries, true, nil
}

// SetVisible stores the listing with the configured TTL.
func (c *CatalogCache) SetVisible(ctx context.Context, entries []models.Entry) error {
	raw, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, visibleKey, string(raw), c.ttl)
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, visibleKey)
}
