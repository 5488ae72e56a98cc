package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 24 * time.Hour

// NotifyGuard enforces at-most-once notification delivery per username,
// backed by Redis. Key format: notify:new_user:<username>
type NotifyGuard struct {
	client *redis.Client
}

// NewNotifyGuard creates a NotifyGuard wrapping the given Redis client.
func NewNotifyGuard(client *redis.Client) *NotifyGuard {
	return &NotifyGuard{client: client}
}

// FirstSend atomically claims the notification slot for username and
// reports whether this caller won it. A false result means a notification
// for this username was already dispatched within guardTTL.
func (g *NotifyGuard) FirstSend(ctx context.Context, username string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(username), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("notify guard: %w", err)
	}
	return ok, nil
}

func (g *NotifyGuard) key(username string) string {
	return fmt.Sprintf("notify:new_user:%s", username)
}
