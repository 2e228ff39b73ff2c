package wsHandler

import (
	"context"

	"riddle-service/domain"
)

// Notifier is the best-effort event fan-out.
type Notifier interface {
	SendToUser(ctx context.Context, userID int64, event string, payload any)
	SendToTopic(ctx context.Context, topic, event string, payload any)
}

// TopicSubscriber tracks which topics a user's connections receive.
type TopicSubscriber interface {
	Subscribe(userID int64, topics ...string)
	Unsubscribe(userID int64, topics ...string)
}

type RoomLocator interface {
	CurrentRoomOf(userID int64) (int64, bool)
}

type RateLimiter interface {
	Allow(key string) bool
}

type ClientHub interface {
	RegisterClient(client *domain.Client)
}
