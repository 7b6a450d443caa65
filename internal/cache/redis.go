package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:works"

// Cache holds the assembled catalog listing (works with their rating
// aggregates). It is invalidated on every work or rating mutation, since
// rating writes change the aggregates; the TTL is only a backstop.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetWorks returns the cached catalog, reporting whether it was present.
func (c *Cache) GetWorks(ctx context.Context) ([]domain.Work, bool, error) {
	val, err := c.client.Get(ctx, catalogKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get catalog from cache: %w", err)
	}

	var works []domain.Work
	if err := json.Unmarshal([]byte(val), &works); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached catalog: %w", err)
	}
	return works, true, nil
}

func (c *Cache) SetWorks(ctx context.Context, works []domain.Work) error {
	val, err := json.Marshal(works)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set catalog in cache: %w", err)
	}
	return nil
}

// Invalidate drops the catalog entry: used when works or ratings change.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("delete cached catalog: %w", err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
