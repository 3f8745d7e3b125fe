package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/therealutkarshpriyadarshi/subfix/internal/analysis"
)

// Cache memoizes analysis reports in Redis, keyed by a digest of the file
// content. Identical uploads are common (retries, duplicated files), and the
// analysis is deterministic, so a content hash is a safe cache key. The
// analysis core itself stays cache-free; this lives entirely at the request
// layer.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a new cache instance
func NewCache(host string, port int, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// ContentKey returns the cache key for a subtitle file's content.
func ContentKey(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// SetReport caches an analysis report under a content key
func (c *Cache) SetReport(ctx context.Context, key string, report *analysis.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return c.client.Set(ctx, "report:"+key, data, c.ttl).Err()
}

// GetReport retrieves a cached report, or nil on a cache miss
func (c *Cache) GetReport(ctx context.Context, key string) (*analysis.Report, error) {
	data, err := c.client.Get(ctx, "report:"+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	var report analysis.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// DeleteReport removes a cached report
func (c *Cache) DeleteReport(ctx context.Context, key string) error {
	return c.client.Del(ctx, "report:"+key).Err()
}

// IncrementStat increments a statistic counter
func (c *Cache) IncrementStat(ctx context.Context, stat string) error {
	return c.client.Incr(ctx, "stats:"+stat).Err()
}

// GetStat retrieves a statistic value
func (c *Cache) GetStat(ctx context.Context, stat string) (int64, error) {
	return c.client.Get(ctx, "stats:"+stat).Int64()
}

// Ping checks the Redis connection
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
