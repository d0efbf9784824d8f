package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/nclexprep-backend/internal/platform/logger"
	"github.com/yungbote/nclexprep-backend/internal/practice"
)

// RecommendationCache holds computed recommendation sets until their
// ExpiresAt. The core stays stateless; this only saves recomputation for
// repeat requests inside the advisory window.
type RecommendationCache interface {
	Get(ctx context.Context, userID uuid.UUID, count int, difficulty string) (*practice.RecommendedPractice, error)
	Set(ctx context.Context, rec practice.RecommendedPractice, count int, difficulty string) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type recommendationCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
}

func NewRecommendationCache(log *logger.Logger) (RecommendationCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(os.Getenv("REDIS_KEY_PREFIX"))
	if prefix == "" {
		prefix = "recommended"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &recommendationCache{
		log:    log.With("service", "RecommendationCache"),
		rdb:    rdb,
		prefix: prefix,
	}, nil
}

func (c *recommendationCache) key(userID uuid.UUID, count int, difficulty string) string {
	if difficulty == "" {
		difficulty = "all"
	}
	return fmt.Sprintf("%s:%s:%d:%s", c.prefix, userID, count, difficulty)
}

func (c *recommendationCache) Get(ctx context.Context, userID uuid.UUID, count int, difficulty string) (*practice.RecommendedPractice, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("recommendation cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, c.key(userID, count, difficulty)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var rec practice.RecommendedPractice
	if err := json.Unmarshal(raw, &rec); err != nil {
		// A malformed entry is treated as a miss, not a failure.
		c.log.Warn("Dropping malformed cache entry", "error", err, "user_id", userID)
		return nil, nil
	}
	if time.Now().After(rec.ExpiresAt) {
		return nil, nil
	}
	return &rec, nil
}

func (c *recommendationCache) Set(ctx context.Context, rec practice.RecommendedPractice, count int, difficulty string) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("recommendation cache not initialized")
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(rec.UserID, count, difficulty), raw, ttl).Err()
}

func (c *recommendationCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("recommendation cache not initialized")
	}
	pattern := fmt.Sprintf("%s:%s:*", c.prefix, userID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del: %w", err)
		}
	}
	return iter.Err()
}

func (c *recommendationCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
