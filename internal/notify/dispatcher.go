package notify

import (
	"context"
	"encoding/json"

	"riddle-service/domain"

	"go.uber.org/zap"
)

// Publisher puts a raw payload on a pub/sub channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Dispatcher delivers events best-effort. Failures are logged, never
// returned to the caller.
type Dispatcher struct {
	publisher Publisher
}

func NewDispatcher(publisher Publisher) *Dispatcher {
	return &Dispatcher{publisher: publisher}
}

// SendToUser queues an event for a single user.
func (d *Dispatcher) SendToUser(ctx context.Context, userID int64, event string, payload any) {
	d.send(ctx, UserChannel(userID), domain.Message{Type: event, Content: payload})
}

// SendToTopic broadcasts an event to every subscriber of topic.
func (d *Dispatcher) SendToTopic(ctx context.Context, topic, event string, payload any) {
	d.send(ctx, TopicChannel(topic), domain.Message{Type: event, Topic: topic, Content: payload})
}

func (d *Dispatcher) send(ctx context.Context, channel string, msg domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		zap.L().Warn("Failed to encode event", zap.String("event", msg.Type), zap.Error(err))
		return
	}
	if err := d.publisher.Publish(ctx, channel, data); err != nil {
		zap.L().Warn("Failed to deliver event",
			zap.String("event", msg.Type),
			zap.String("channel", channel),
			zap.Error(err))
	}
}
