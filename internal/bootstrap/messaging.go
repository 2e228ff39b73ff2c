package bootstrap

import (
	"context"

	"riddle-service/config"
	"riddle-service/internal/initializer"
	"riddle-service/pkg/messaging"

	"go.uber.org/zap"
)

type Messaging interface {
	Close() error
	Publish(ctx context.Context, topic, msgType string, payload any) error
	Consume(ctx context.Context, topic string, handler messaging.MessageHandler) error
}

type MessageHandler interface {
	Handle(ctx context.Context, msg *messaging.Message) error
}

// SetupMessaging returns a nil Messaging when Kafka is disabled.
func SetupMessaging(config config.Config) Messaging {
	client := initializer.InitMessaging(config)
	if client == nil {
		return nil
	}
	return client
}

func messageRouter(handlers map[string]MessageHandler) messaging.MessageHandler {
	return func(ctx context.Context, msg *messaging.Message) error {
		handler, ok := handlers[msg.Type]
		if !ok {
			zap.L().Debug("Ignoring message", zap.String("type", msg.Type), zap.String("id", msg.ID))
			return nil
		}
		return handler.Handle(ctx, msg)
	}
}

// StartConsumers reads the user topic and the retry topic until ctx ends.
func StartConsumers(ctx context.Context, kafka Messaging, config config.Config, handlers map[string]MessageHandler) {
	router := messageRouter(handlers)
	for _, topic := range []string{config.Kafka.UserTopic, config.Kafka.RetryTopic} {
		go func(topic string) {
			if err := kafka.Consume(ctx, topic, router); err != nil {
				zap.L().Error("Kafka consumer stopped", zap.String("topic", topic), zap.Error(err))
			}
		}(topic)
	}
}
