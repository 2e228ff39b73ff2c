package bootstrap

import (
	"context"

	"riddle-service/config"
	"riddle-service/domain"
	"riddle-service/internal/initializer"
)

type SessionManager interface {
	Close() error
	GetSession(ctx context.Context, token string) (domain.Identity, error)
}

func InitSessionRedis(config config.Config) SessionManager {
	return initializer.InitSessionRedis(config)
}
