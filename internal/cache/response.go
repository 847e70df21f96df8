// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for assembled catalog payloads.
// The category tree is rebuilt from an upstream index fetch on every miss;
// caching the serialized response lets the hot navigation endpoints skip
// both the fetch and the rebuild. Cache errors are logged and treated as
// misses — the upstream index remains the source of truth.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogKeyPrefix is the Valkey key prefix for cached catalog payloads.
	catalogKeyPrefix = "catalog:"

	// DefaultCatalogTTL matches the HTTP s-maxage window on the catalog
	// endpoints.
	DefaultCatalogTTL = 5 * time.Minute
)

// ResponseCache stores serialized catalog responses in Valkey. It is an
// explicit object owned by its caller; there is no package-level instance.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultCatalogTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get retrieves a cached payload. Returns false on miss or cache error.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, catalogKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("catalog cache hit", "key", key)
	return val, true
}

// Set stores a serialized payload with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	if err := rc.client.Set(ctx, catalogKeyPrefix+key, payload, rc.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached payload.
func (rc *ResponseCache) Invalidate(ctx context.Context, key string) {
	if err := rc.client.Del(ctx, catalogKeyPrefix+key).Err(); err != nil {
		slog.Warn("catalog cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("catalog cache invalidated", "key", key)
}

// InvalidateAll removes every cached catalog payload by scanning for the
// prefix. Used when the upstream index is reindexed.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, catalogKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("catalog cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("catalog cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("catalog cache fully cleared", "deleted", deleted)
	}
}

// TreeKey returns the cache key for the assembled category tree of a backend.
func TreeKey(backend string) string {
	return "tree:" + backend
}
