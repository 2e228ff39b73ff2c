package bootstrap

import (
	"context"

	"riddle-service/config"
	"riddle-service/domain"
	"riddle-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type RedisManager interface {
	Close() error
	Client() *redis.Client
	Publish(ctx context.Context, channel string, payload []byte) error
	SaveCustomPuzzle(ctx context.Context, puzzle domain.Puzzle) (string, error)
	GetCustomPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
	RecordRound(ctx context.Context, result domain.RoundResult) error
	TopWinners(ctx context.Context, limit int) ([]domain.RankingEntry, error)
}

func InitRedis(config config.Config) RedisManager {
	return initializer.InitRedis(config)
}
