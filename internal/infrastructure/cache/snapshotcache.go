// Package cache provides the redis-backed read-side cache for pass
// verification queries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	accessUC "github.com/Ttaiwl/chronopass/internal/application/access/usecases"
	"github.com/Ttaiwl/chronopass/internal/shared/logger"
)

const snapshotKeyPrefix = "chronopass:sub:"

// RedisSnapshotCache caches pass snapshots in redis with a TTL. All errors
// are logged and swallowed: a broken cache degrades to repository reads.
type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		client: client,
		ttl:    ttl,
		logger: log.Named("cache.snapshot"),
	}
}

func snapshotKey(tokenID uint64) string {
	return fmt.Sprintf("%s%d", snapshotKeyPrefix, tokenID)
}

func (c *RedisSnapshotCache) Get(ctx context.Context, tokenID uint64) (*accessUC.SubscriptionSnapshot, bool) {
	data, err := c.client.Get(ctx, snapshotKey(tokenID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warnw("snapshot cache read failed", "token_id", tokenID, "error", err)
		}
		return nil, false
	}

	var snap accessUC.SubscriptionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Warnw("snapshot cache entry corrupt, dropping", "token_id", tokenID, "error", err)
		c.client.Del(ctx, snapshotKey(tokenID))
		return nil, false
	}

	return &snap, true
}

func (c *RedisSnapshotCache) Set(ctx context.Context, snap *accessUC.SubscriptionSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warnw("failed to marshal snapshot", "token_id", snap.TokenID, "error", err)
		return
	}

	if err := c.client.Set(ctx, snapshotKey(snap.TokenID), data, c.ttl).Err(); err != nil {
		c.logger.Warnw("snapshot cache write failed", "token_id", snap.TokenID, "error", err)
	}
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context, tokenID uint64) {
	if err := c.client.Del(ctx, snapshotKey(tokenID)).Err(); err != nil {
		c.logger.Warnw("snapshot cache invalidation failed", "token_id", tokenID, "error", err)
	}
}

var _ accessUC.SnapshotCache = (*RedisSnapshotCache)(nil)
