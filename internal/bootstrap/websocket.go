package bootstrap

import (
	"context"
	"strconv"

	"riddle-service/domain"
	"riddle-service/internal/api/ws/hub"
	"riddle-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type Hub interface {
	Run(ctx context.Context)
	Listen(ctx context.Context, client *redis.Client)
	Attach(router hub.CommandRouter, disconnects hub.DisconnectHandler)
	RegisterClient(client *domain.Client)
	Subscribe(userID int64, topics ...string)
	Unsubscribe(userID int64, topics ...string)
}

func InitWebsocket() Hub {
	return initializer.InitWebsocket()
}

type limiterReset interface {
	Forget(key string)
}

// disconnectChain runs the leave path, then drops the user's command limiter.
type disconnectChain struct {
	leave   hub.DisconnectHandler
	limiter limiterReset
}

func (d disconnectChain) HandleDisconnect(ctx context.Context, userID int64) {
	d.leave.HandleDisconnect(ctx, userID)
	d.limiter.Forget(strconv.FormatInt(userID, 10))
}
