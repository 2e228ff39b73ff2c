package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type SendQuestionUseCase interface {
	Execute(ctx context.Context, roomID, userID int64, question string) (*domain.QuestionPayload, error)
}

type sendQuestionUseCase struct {
	registry *game.Registry
}

func NewSendQuestionUseCase(registry *game.Registry) SendQuestionUseCase {
	return &sendQuestionUseCase{registry: registry}
}

func (u *sendQuestionUseCase) Execute(ctx context.Context, roomID, userID int64, question string) (*domain.QuestionPayload, error) {
	room, round, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}
	defer room.Unlock()

	player, err := requireMember(room, userID)
	if err != nil {
		return nil, err
	}
	if !round.IsCurrentQuestioner(userID) {
		return nil, fmt.Errorf("%w: it is not your turn", domain.ErrInvalidInput)
	}
	if !round.ValidateTurn() {
		return nil, fmt.Errorf("%w: no questions left this round", domain.ErrInvalidInput)
	}
	if _, pending := round.PendingQuestion(); pending {
		return nil, fmt.Errorf("%w: a question is already waiting for an answer", domain.ErrInvalidInput)
	}

	round.SetPendingQuestion(game.PendingQuestion{QuestionerID: userID, Question: question})
	return &domain.QuestionPayload{
		HostID:   room.HostID,
		SenderID: userID,
		Nickname: player.Nickname,
		Question: question,
	}, nil
}
