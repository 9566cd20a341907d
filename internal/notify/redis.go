package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis publishes change signals to a Redis channel.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis from a URL. The initial ping is the only
// call that may fail; after that every publish is best-effort.
func NewRedis(redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client}, nil
}

// NewRedisWithClient wraps an existing client. Tests use this.
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// ContentChanged publishes the change signal without blocking the
// caller. Publish failures are logged, never returned.
func (r *Redis) ContentChanged() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.client.Publish(ctx, Channel, "").Err(); err != nil {
			slog.Warn("change notification dropped", "error", err)
		}
	}()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
