package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageTTL bounds how stale a cached view may get even without writes.
const PageTTL = 5 * time.Minute

// ViewCache stores rendered view bodies keyed by request path and drops
// them when a write invalidates the path.
type ViewCache interface {
	GetPage(ctx context.Context, path string) ([]byte, bool)
	SetPage(ctx context.Context, path string, body []byte)
	Invalidate(ctx context.Context, paths ...string)
}

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &Redis{client: rdb}, nil
}

func pageKey(path string) string {
	return "view:" + path
}

func (c *Redis) GetPage(ctx context.Context, path string) ([]byte, bool) {
	body, err := c.client.Get(ctx, pageKey(path)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("view cache read failed for %s: %v", path, err)
		}
		return nil, false
	}
	return body, true
}

func (c *Redis) SetPage(ctx context.Context, path string, body []byte) {
	if err := c.client.Set(ctx, pageKey(path), body, PageTTL).Err(); err != nil {
		log.Printf("view cache write failed for %s: %v", path, err)
	}
}

func (c *Redis) Invalidate(ctx context.Context, paths ...string) {
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = pageKey(p)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("view cache invalidation failed: %v", err)
	}
}

func (c *Redis) Close() error {
	return c.client.Close()
}

// Noop serves when no REDIS_URL is configured: every lookup misses and
// invalidation does nothing.
type Noop struct{}

func (Noop) GetPage(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) SetPage(context.Context, string, []byte)        {}
func (Noop) Invalidate(context.Context, ...string)          {}
