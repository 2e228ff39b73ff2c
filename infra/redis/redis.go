package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisManager carries event fan-out, custom puzzles and the win ranking.
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}
	zap.L().Info("Connected to Redis successfully", zap.String("addr", redisAddr))

	return &RedisManager{client: rdb}, nil
}

func (rm *RedisManager) Client() *redis.Client {
	return rm.client
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

// Publish sends an encoded event on a pub/sub channel.
func (rm *RedisManager) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := rm.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}
