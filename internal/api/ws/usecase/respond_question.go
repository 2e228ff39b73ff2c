package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type RespondQuestionParams struct {
	QuestionerID int64
	Question     string
	Answer       domain.AnswerStatus
}

type RespondQuestionResult struct {
	HostID int64
	Record domain.QnA
	// Exactly one of NextGuess and NextTurn is set.
	NextGuess *domain.GuessPayload
	NextTurn  *domain.NextTurn
}

type RespondQuestionUseCase interface {
	Execute(ctx context.Context, roomID, userID int64, params RespondQuestionParams) (*RespondQuestionResult, error)
}

type respondQuestionUseCase struct {
	registry *game.Registry
	users    UserRepository
}

func NewRespondQuestionUseCase(registry *game.Registry, users UserRepository) RespondQuestionUseCase {
	return &respondQuestionUseCase{
		registry: registry,
		users:    users,
	}
}

func (u *respondQuestionUseCase) Execute(ctx context.Context, roomID, userID int64, params RespondQuestionParams) (*RespondQuestionResult, error) {
	switch params.Answer {
	case domain.AnswerYes, domain.AnswerNo, domain.AnswerIrrelevant:
	default:
		return nil, fmt.Errorf("%w: %q is not a valid answer", domain.ErrInvalidInput, params.Answer)
	}

	room, round, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}

	res, err := u.respond(room, round, userID, params)
	room.Unlock()
	if err != nil {
		return nil, err
	}

	refreshNickname(ctx, u.users, res.NextTurn)
	return res, nil
}

func (u *respondQuestionUseCase) respond(room *game.Room, round *game.Game, userID int64, params RespondQuestionParams) (*RespondQuestionResult, error) {
	if err := requireHost(room, userID, "answer questions"); err != nil {
		return nil, err
	}
	pending, ok := round.PendingQuestion()
	if !ok || pending.QuestionerID != params.QuestionerID || pending.Question != params.Question {
		return nil, fmt.Errorf("%w: that question is not waiting for an answer", domain.ErrInvalidInput)
	}

	record := domain.QnA{
		Type:    domain.HistoryQuestion,
		ActorID: pending.QuestionerID,
		Text:    pending.Question,
		Status:  params.Answer,
	}
	round.AddQnA(record)
	round.ConsumeQuestion()
	round.ClearPendingQuestion()

	res := &RespondQuestionResult{HostID: room.HostID, Record: record}
	if head, ok := round.PeekGuess(); ok {
		res.NextGuess = &domain.GuessPayload{SenderID: head.SenderID, Guess: head.Guess}
		return res, nil
	}
	round.AdvanceTurn()
	res.NextTurn = nextTurn(room, round)
	return res, nil
}
