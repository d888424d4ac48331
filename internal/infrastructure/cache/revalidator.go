package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	RevalidateChannel = "site:revalidate"
	pathVersionPrefix = "revalidate:path:"
)

type revalidateMessage struct {
	Paths []string  `json:"paths"`
	At    time.Time `json:"at"`
}

// RedisRevalidator bumps a version counter per path and announces the batch
// on RevalidateChannel for the page renderer to pick up.
type RedisRevalidator struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisRevalidator(client redis.UniversalClient) *RedisRevalidator {
	return &RedisRevalidator{client: client, now: time.Now}
}

func (r *RedisRevalidator) Revalidate(ctx context.Context, paths ...string) error {
	paths = dedupe(paths)
	if len(paths) == 0 {
		return nil
	}

	payload, err := json.Marshal(revalidateMessage{Paths: paths, At: r.now().UTC()})
	if err != nil {
		return fmt.Errorf("encode revalidate message: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, p := range paths {
		pipe.Incr(ctx, pathVersionPrefix+p)
	}
	pipe.Publish(ctx, RevalidateChannel, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish revalidation: %w", err)
	}
	return nil
}

// LogRevalidator only records revalidations. Used when no redis is configured.
type LogRevalidator struct {
	logger *zap.Logger
}

func NewLogRevalidator(logger *zap.Logger) *LogRevalidator {
	return &LogRevalidator{logger: logger}
}

func (r *LogRevalidator) Revalidate(ctx context.Context, paths ...string) error {
	r.logger.Info("revalidate paths", zap.Strings("paths", dedupe(paths)))
	return nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
