package kafkaHandler

import (
	"context"

	"riddle-service/domain"
	"riddle-service/pkg/messaging"
)

type Publisher interface {
	Publish(ctx context.Context, topic, msgType string, payload any) error
}

// GameEndedRecorder emits a game.ended event for every finished round.
type GameEndedRecorder struct {
	publisher Publisher
	topic     string
}

func NewGameEndedRecorder(publisher Publisher, topic string) *GameEndedRecorder {
	return &GameEndedRecorder{
		publisher: publisher,
		topic:     topic,
	}
}

func (r *GameEndedRecorder) RecordRound(ctx context.Context, result domain.RoundResult) error {
	return r.publisher.Publish(ctx, r.topic, messaging.MessageGameEnded, result)
}
