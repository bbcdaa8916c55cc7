package external

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// AnnotationCache is a two-tier cache for external annotation lookups: an
// in-process LRU absorbs hot repeated CURIEs within one process, Redis
// absorbs repeats across process restarts and horizontally-scaled
// instances. A miss in both tiers is the caller's signal to go to the
// annotation service.
type AnnotationCache struct {
	lru        *lru.Cache[string, domain.Annotation]
	redis      *redis.Client
	defaultTTL time.Duration
}

// NewAnnotationCache builds the cache from config. A blank RedisURL leaves
// the cache LRU-only, which is sufficient for the standalone deployment
// path where there is no shared Redis instance to reach.
func NewAnnotationCache(config domain.CacheConfig) (*AnnotationCache, error) {
	size := config.LRUSize
	if size <= 0 {
		size = 1024
	}
	local, err := lru.New[string, domain.Annotation](size)
	if err != nil {
		return nil, fmt.Errorf("creating annotation LRU: %w", err)
	}

	c := &AnnotationCache{lru: local, defaultTTL: config.DefaultTTL}
	if config.RedisURL == "" {
		return c, nil
	}

	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	opts.PoolSize = config.PoolSize
	opts.PoolTimeout = config.PoolTimeout

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	c.redis = client
	return c, nil
}

// Get checks the LRU then, if present, Redis. A Redis hit is promoted back
// into the LRU.
func (c *AnnotationCache) Get(ctx context.Context, curie string) (domain.Annotation, bool, error) {
	if ann, ok := c.lru.Get(curie); ok {
		return ann, true, nil
	}
	if c.redis == nil {
		return nil, false, nil
	}

	val, err := c.redis.Get(ctx, redisKey(curie)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting annotation cache entry: %w", err)
	}

	var ann domain.Annotation
	if err := json.Unmarshal([]byte(val), &ann); err != nil {
		c.redis.Del(ctx, redisKey(curie))
		return nil, false, nil
	}
	c.lru.Add(curie, ann)
	return ann, true, nil
}

// Set writes through both tiers.
func (c *AnnotationCache) Set(ctx context.Context, curie string, ann domain.Annotation, ttl time.Duration) error {
	c.lru.Add(curie, ann)
	if c.redis == nil {
		return nil
	}
	if ttl == 0 {
		ttl = c.defaultTTL
	}
	data, err := json.Marshal(ann)
	if err != nil {
		return fmt.Errorf("marshaling annotation for cache: %w", err)
	}
	return c.redis.Set(ctx, redisKey(curie), data, ttl).Err()
}

// Invalidate drops a single CURIE from both tiers.
func (c *AnnotationCache) Invalidate(ctx context.Context, curie string) error {
	c.lru.Remove(curie)
	if c.redis == nil {
		return nil
	}
	return c.redis.Del(ctx, redisKey(curie)).Err()
}

// Close releases the Redis connection, if one was opened.
func (c *AnnotationCache) Close() error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Close()
}

func redisKey(curie string) string {
	return "annotation:" + curie
}
