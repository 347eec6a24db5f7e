package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/task-tracker/internal/domain"
	"github.com/jsamuelsen11/task-tracker/internal/domain/activity"
	"github.com/jsamuelsen11/task-tracker/internal/platform/config"
)

type published struct {
	channel string
	body    []byte
}

// fakeRedis records PUBLISH calls.
type fakeRedis struct {
	sent    []published
	pubErr  error
	pingErr error
}

func (f *fakeRedis) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.pubErr != nil {
		return redis.NewIntResult(0, f.pubErr)
	}
	f.sent = append(f.sent, published{channel: channel, body: message.([]byte)})
	return redis.NewIntResult(2, nil)
}

func (f *fakeRedis) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func (f *fakeRedis) Close() error { return nil }

func sampleActivity() activity.Activity {
	return activity.Activity{
		ID:        31,
		TaskID:    7,
		UserID:    2,
		Type:      activity.TypeTaskStatusChanged,
		Payload:   map[string]any{"from": "created", "to": "in_progress"},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisPublisher_Publish(t *testing.T) {
	t.Parallel()

	fake := &fakeRedis{}
	p := NewRedisPublisher(fake, "task-tracker.activity", slog.New(slog.DiscardHandler))

	if err := p.Publish(context.Background(), sampleActivity()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(fake.sent) != 1 {
		t.Fatalf("published %d messages, want 1", len(fake.sent))
	}
	if fake.sent[0].channel != "task-tracker.activity" {
		t.Errorf("channel = %q", fake.sent[0].channel)
	}

	var msg Message
	if err := json.Unmarshal(fake.sent[0].body, &msg); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if msg.ID != 31 || msg.TaskID != 7 || msg.Type != "task_status_changed" {
		t.Errorf("message = %+v", msg)
	}
	if msg.Payload["to"] != "in_progress" {
		t.Errorf("payload = %v", msg.Payload)
	}
}

func TestRedisPublisher_FailureIsUnavailable(t *testing.T) {
	t.Parallel()

	p := NewRedisPublisher(&fakeRedis{pubErr: errors.New("connection refused")}, "ch", slog.New(slog.DiscardHandler))

	err := p.Publish(context.Background(), sampleActivity())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Publish() error = %v, want ErrUnavailable", err)
	}
}

func TestRedisPublisher_Health(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pingErr error
		wantErr bool
	}{
		{name: "reachable"},
		{name: "down", pingErr: errors.New("dial tcp: refused"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewRedisPublisher(&fakeRedis{pingErr: tt.pingErr}, "ch", slog.New(slog.DiscardHandler))

			if p.Name() != "redis" {
				t.Errorf("Name() = %q", p.Name())
			}
			if err := p.HealthCheck(context.Background()); (err != nil) != tt.wantErr {
				t.Errorf("HealthCheck() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	if err := (Nop{}).Publish(context.Background(), sampleActivity()); err != nil {
		t.Errorf("Nop.Publish() = %v", err)
	}
}

// TestRedisPublisher_LiveRedis requires Redis on localhost:6379.
func TestRedisPublisher_LiveRedis(t *testing.T) {
	client := NewRedisClient(config.EventsConfig{RedisAddr: "localhost:6379"})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	sub := client.Subscribe(ctx, "task-tracker.test")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	p := NewRedisPublisher(client, "task-tracker.test", slog.New(slog.DiscardHandler))
	if err := p.Publish(ctx, sampleActivity()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case m := <-sub.Channel():
		var msg Message
		if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil || msg.ID != 31 {
			t.Errorf("received %q (%v)", m.Payload, err)
		}
	case <-time.After(2 * time.Second):
		t.Error("no message received")
	}
}
