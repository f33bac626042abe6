package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"okaigpt/backend/internal/model"
)

// redisPublisher is the subset of *redis.Client the notifier needs.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes the full video record on a pub/sub channel after
// every status update.
type RedisNotifier struct {
	client  redisPublisher
	closer  func() error
	channel string
}

// NewRedisNotifier connects to Redis and verifies the connection with a ping.
func NewRedisNotifier(addr, password, channel string) (*RedisNotifier, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisNotifier{client: rdb, closer: rdb.Close, channel: channel}, nil
}

func (n *RedisNotifier) NotifyVideoStatus(ctx context.Context, video *model.Video) error {
	payload, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("encode video status: %w", err)
	}
	return n.client.Publish(ctx, n.channel, string(payload)).Err()
}

func (n *RedisNotifier) Close() error {
	if n.closer == nil {
		return nil
	}
	return n.closer()
}
