package enhance

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/metrics"
	"github.com/Skufu/aidoc/internal/symptoms"
)

const cacheKeyPrefix = "aidoc:enhance:"

// NewRedisClient connects to REDIS_URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// Cached memoises successful enhancements in Redis, keyed by the normalised
// symptom tokens. Cache failures never fail the enhancement.
type Cached struct {
	next   symptoms.Enhancer
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

func NewCached(next symptoms.Enhancer, rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) *Cached {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{next: next, rdb: rdb, ttl: ttl, logger: logger.Named("enhance.cache")}
}

func (c *Cached) Enhance(ctx context.Context, req symptoms.EnhanceRequest) (*symptoms.Enhancement, error) {
	key := CacheKey(req.Tokens)

	if hit, ok := c.lookup(ctx, key); ok {
		return hit, nil
	}

	out, err := c.next.Enhance(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(out)
	if err != nil {
		c.logger.Warn("encode enhancement for cache", zap.Error(err))
		return out, nil
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

func (c *Cached) lookup(ctx context.Context, key string) (*symptoms.Enhancement, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		metrics.EnhancementCache.WithLabelValues("miss").Inc()
		return nil, false
	case err != nil:
		metrics.EnhancementCache.WithLabelValues("error").Inc()
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var out symptoms.Enhancement
	if err := json.Unmarshal(raw, &out); err != nil || len(out.Conditions) == 0 {
		metrics.EnhancementCache.WithLabelValues("error").Inc()
		c.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	metrics.EnhancementCache.WithLabelValues("hit").Inc()
	return &out, true
}

// CacheKey hashes the ordered tokens so that equivalent inputs share an entry.
func CacheKey(tokens []string) string {
	sum := sha256.Sum256([]byte(strings.Join(tokens, "\n")))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
