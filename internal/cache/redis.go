package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a PageCache backed by a shared Redis instance, for deployments
// where every replica should serve the same rendered bytes. Redis errors
// degrade to cache misses; the page is recomputed, never failed.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedis(url, password string, ttl time.Duration, logger *slog.Logger) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl, logger: logger}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		r.logger.Error("redis get failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key, html string) {
	if err := r.client.Set(ctx, key, html, r.ttl).Err(); err != nil {
		r.logger.Error("redis set failed", "key", key, "error", err)
	}
}

func (r *Redis) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, "page:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			r.logger.Error("redis del failed", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.logger.Error("redis scan failed", "error", err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
