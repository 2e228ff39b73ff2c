package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageHandler processes one decoded event.
type MessageHandler func(ctx context.Context, msg *Message) error

type KafkaClient struct {
	config KafkaConfig
	writer *kafka.Writer

	mu      sync.Mutex
	readers []*kafka.Reader
}

func NewKafkaClient(config KafkaConfig) (*KafkaClient, error) {
	if len(config.Brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectionTimeout)
	defer cancel()
	conn, err := kafka.DialContext(ctx, "tcp", config.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("failed to reach kafka broker %s: %w", config.Brokers[0], err)
	}
	conn.Close()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &KafkaClient{config: config, writer: writer}, nil
}

// Publish wraps payload in a Message and writes it to topic.
func (k *KafkaClient) Publish(ctx context.Context, topic, msgType string, payload any) error {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	return k.write(ctx, topic, msg)
}

func (k *KafkaClient) write(ctx context.Context, topic string, msg *Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message %s: %w", msg.ID, err)
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(msg.ID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}
	return nil
}

// Consume reads topic until ctx is done. A failed message is sent to the
// retry topic until MaxRetries, then to the DLQ; the offset is committed
// either way.
func (k *KafkaClient) Consume(ctx context.Context, topic string, handler MessageHandler) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.config.Brokers,
		GroupID: k.config.GroupID,
		Topic:   topic,
	})
	k.mu.Lock()
	k.readers = append(k.readers, reader)
	k.mu.Unlock()

	zap.L().Info("Kafka consumer started", zap.String("topic", topic), zap.String("group_id", k.config.GroupID))

	for {
		raw, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch from %s: %w", topic, err)
		}

		k.process(ctx, topic, raw, handler)

		if err := reader.CommitMessages(ctx, raw); err != nil && ctx.Err() == nil {
			zap.L().Warn("Failed to commit offset", zap.String("topic", topic), zap.Error(err))
		}
	}
}

func (k *KafkaClient) process(ctx context.Context, topic string, raw kafka.Message, handler MessageHandler) {
	var msg Message
	if err := json.Unmarshal(raw.Value, &msg); err != nil {
		zap.L().Warn("Undecodable kafka message", zap.String("topic", topic), zap.Error(err))
		k.deadLetter(ctx, &Message{ID: string(raw.Key), Payload: raw.Value, OriginTopic: topic, LastError: err.Error()})
		return
	}

	if err := handler(ctx, &msg); err != nil {
		next, failed := nextAttempt(k.config, &msg, topic, err)
		zap.L().Warn("Kafka handler failed",
			zap.String("id", msg.ID),
			zap.String("type", msg.Type),
			zap.Int("attempt", msg.Attempt),
			zap.String("next_topic", next),
			zap.Error(err))
		if next == "" {
			return
		}
		if err := k.write(ctx, next, failed); err != nil {
			zap.L().Error("Failed to forward failed message", zap.String("id", msg.ID), zap.Error(err))
		}
	}
}

func (k *KafkaClient) deadLetter(ctx context.Context, msg *Message) {
	if k.config.DLQTopic == "" {
		return
	}
	if err := k.write(ctx, k.config.DLQTopic, msg); err != nil {
		zap.L().Error("Failed to write to DLQ", zap.Error(err))
	}
}

func (k *KafkaClient) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error
	for _, r := range k.readers {
		errs = append(errs, r.Close())
	}
	errs = append(errs, k.writer.Close())
	return errors.Join(errs...)
}
