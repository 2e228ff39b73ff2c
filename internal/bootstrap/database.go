package bootstrap

import (
	"context"

	"riddle-service/config"
	"riddle-service/domain"
	"riddle-service/internal/initializer"
)

type PostgresRepository interface {
	Close() error
	GetPuzzle(ctx context.Context, id string) (*domain.Puzzle, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	UpsertUser(ctx context.Context, id int64, nickname string) error
	RecordRound(ctx context.Context, result domain.RoundResult) error
}

func InitDatabase(config config.Config) PostgresRepository {
	return initializer.InitDatabase(config)
}
