package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	statusKeyPrefix = "robocupido:submitted:"
	statusTTL       = 5 * time.Minute
)

// StatusCache is a best-effort Redis cache for the submission-status query.
// Every method degrades to a miss on Redis errors; the database stays the
// source of truth.
type StatusCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStatusCache(client *redis.Client, logger *zap.Logger) *StatusCache {
	return &StatusCache{client: client, logger: logger}
}

// GetSubmitted reports the cached status and whether the key was present.
func (c *StatusCache) GetSubmitted(ctx context.Context, email string) (submitted bool, ok bool) {
	val, err := c.client.Get(ctx, statusKeyPrefix+email).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("status cache read failed", zap.Error(err))
		}
		return false, false
	}
	return val == "1", true
}

func (c *StatusCache) SetSubmitted(ctx context.Context, email string, submitted bool) {
	val := "0"
	if submitted {
		val = "1"
	}
	if err := c.client.Set(ctx, statusKeyPrefix+email, val, statusTTL).Err(); err != nil {
		c.logger.Debug("status cache write failed", zap.Error(err))
	}
}
