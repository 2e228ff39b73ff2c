package hub

import (
	"context"

	"riddle-service/internal/notify"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Listen relays every event published through Redis to this process's
// connections until ctx is done.
func (h *Hub) Listen(ctx context.Context, client *redis.Client) {
	pubsub := client.PSubscribe(ctx, notify.ChannelPattern)
	defer pubsub.Close()
	zap.L().Info("Subscribed to Redis channels", zap.String("pattern", notify.ChannelPattern))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				zap.L().Warn("Redis subscription closed")
				return
			}
			h.relay(msg.Channel, msg.Payload)
		}
	}
}

func (h *Hub) relay(channel, payload string) {
	dest, ok := notify.ParseChannel(channel)
	if !ok {
		zap.L().Warn("Dropping message on unknown channel", zap.String("channel", channel))
		return
	}
	h.Deliver(dest, []byte(payload))
}
