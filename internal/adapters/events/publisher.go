// Package events announces recorded task activity on a Redis pub/sub
// channel so other processes (notifiers, dashboards) can follow along.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/task-tracker/internal/ports"
)

var (
	_ ports.ActivityPublisher = (*RedisPublisher)(nil)
	_ ports.HealthChecker     = (*RedisPublisher)(nil)
	_ ports.ActivityPublisher = Nop{}
)

// Message is the JSON document published for every activity.
type Message struct {
	ID        int64          `json:"id"`
	TaskID    int64          `json:"task_id"`
	UserID    int64          `json:"user_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewMessage converts an activity to its wire form.
func NewMessage(a activity.Activity) Message {
	return Message{
		ID:        a.ID,
		TaskID:    a.TaskID,
		UserID:    a.UserID,
		Type:      a.Type.String(),
		Payload:   a.Payload,
		CreatedAt: a.CreatedAt.UTC(),
	}
}

// redisClient is the slice of *redis.Client the publisher uses.
type redisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisPublisher PUBLISHes activities as JSON.
type RedisPublisher struct {
	client  redisClient
	channel string
	logger  *slog.Logger
}

// NewRedisClient builds the client for cfg without connecting.
func NewRedisClient(cfg config.EventsConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisPublisher returns a publisher writing to channel.
func NewRedisPublisher(client redisClient, channel string, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// Publish implements ports.ActivityPublisher.
func (p *RedisPublisher) Publish(ctx context.Context, a activity.Activity) error {
	body, err := json.Marshal(NewMessage(a))
	if err != nil {
		return fmt.Errorf("encoding activity %d: %w", a.ID, err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, body).Result()
	if err != nil {
		return fmt.Errorf("%w: publishing activity %d: %w", domain.ErrUnavailable, a.ID, err)
	}

	p.logger.DebugContext(ctx, "activity published",
		slog.Int64("activity_id", a.ID),
		slog.Int64("task_id", a.TaskID),
		slog.String("channel", p.channel),
		slog.Int64("receivers", receivers),
	)
	return nil
}

// Name implements ports.HealthChecker.
func (p *RedisPublisher) Name() string { return "redis" }

// HealthCheck pings Redis.
func (p *RedisPublisher) HealthCheck(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close releases the Redis connection pool.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Nop discards activities. It is used when events are disabled.
type Nop struct{}

// Publish implements ports.ActivityPublisher.
func (Nop) Publish(context.Context, activity.Activity) error { return nil }
