package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MessageUserCreated = "user.created"
	MessageGameEnded   = "game.ended"
)

// Message is the JSON envelope every event travels in.
type Message struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	Attempt     int             `json:"attempt"`
	OriginTopic string          `json:"originTopic,omitempty"`
	LastError   string          `json:"lastError,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewMessage(msgType string, payload any) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", msgType, err)
	}
	return &Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *Message) Decode(v any) error {
	if len(m.Payload) == 0 {
		return fmt.Errorf("message %s has no payload", m.ID)
	}
	if err := json.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("message %s: %w", m.ID, err)
	}
	return nil
}

// nextAttempt decides where a message whose handler failed goes next.
func nextAttempt(cfg KafkaConfig, msg *Message, topic string, handlerErr error) (string, *Message) {
	failed := *msg
	failed.LastError = handlerErr.Error()
	if failed.OriginTopic == "" {
		failed.OriginTopic = topic
	}

	if cfg.EnableRetry && cfg.RetryTopic != "" && msg.Attempt < cfg.MaxRetries {
		failed.Attempt++
		return cfg.RetryTopic, &failed
	}
	return cfg.DLQTopic, &failed
}
