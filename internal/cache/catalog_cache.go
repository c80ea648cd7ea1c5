package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"certpoints/internal/model"
)

// CatalogEntry is the cached copy of the rule catalog
type CatalogEntry struct {
	Version string               `json:"version"`
	Rules   []model.ActivityRule `json:"rules"`
}

// CatalogCache holds the current catalog snapshot between mutations
type CatalogCache interface {
	Get(ctx context.Context) (*CatalogEntry, error)
	Set(ctx context.Context, entry *CatalogEntry) error
	Invalidate(ctx context.Context) error
}

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache whose entries expire after ttl
func NewCatalogCache(client *redis.Client, ttl time.Duration) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *catalogCache) key() string {
	return "catalog:snapshot"
}

func (c *catalogCache) Get(ctx context.Context) (*CatalogEntry, error) {
	data, err := c.client.Get(ctx, c.key()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading cached catalog")
	}
	var entry CatalogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Wrap(err, "decoding cached catalog")
	}
	return &entry, nil
}

func (c *catalogCache) Set(ctx context.Context, entry *CatalogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "encoding catalog")
	}
	return c.client.Set(ctx, c.key(), data, c.ttl).Err()
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key()).Err()
}
