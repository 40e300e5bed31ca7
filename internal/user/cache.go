package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "user:token:"
	cacheGenPrefix = "user:gen:"
)

var errStaleGeneration = errors.New("user cache: stale generation")

// Cache keeps token lookups out of the database while clients poll.
// Failures are logged and treated as misses; the store stays authoritative.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCache wraps a redis client. A non-positive ttl falls back to ten minutes.
func NewCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached user for digest, or nil on a miss.
func (c *Cache) Get(ctx context.Context, digest string) *User {
	raw, err := c.rdb.Get(ctx, cacheKeyPrefix+digest).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("user cache get failed", zap.Error(err))
		}
		return nil
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		c.logger.Warn("user cache entry is corrupt", zap.Error(err))
		return nil
	}
	return &u
}

// Generation returns the current write generation for digest. ok is false
// when redis cannot answer; callers must not cache in that case.
func (c *Cache) Generation(ctx context.Context, digest string) (gen int64, ok bool) {
	gen, err := c.rdb.Get(ctx, cacheGenPrefix+digest).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.logger.Warn("user cache generation read failed", zap.Error(err))
		return 0, false
	}
	return gen, true
}

// Set stores u under digest unless the profile was invalidated since gen was
// read. A reader that loaded the row before an update therefore cannot put
// the old profile back.
func (c *Cache) Set(ctx context.Context, digest string, u *User, gen int64) {
	raw, err := json.Marshal(u)
	if err != nil {
		c.logger.Warn("user cache encode failed", zap.Error(err))
		return
	}
	genKey := cacheGenPrefix + digest
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKeyPrefix+digest, raw, c.ttl)
			return nil
		})
		return err
	}, genKey)
	switch {
	case err == nil, errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
	default:
		c.logger.Warn("user cache set failed", zap.Error(err))
	}
}

// Invalidate bumps the generation for digest and drops its entry. Call it
// after the store write.
func (c *Cache) Invalidate(ctx context.Context, digest string) {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, cacheGenPrefix+digest)
		pipe.Del(ctx, cacheKeyPrefix+digest)
		return nil
	})
	if err != nil {
		c.logger.Warn("user cache invalidate failed", zap.Error(err))
	}
}
