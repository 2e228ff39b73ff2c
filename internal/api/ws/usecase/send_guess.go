package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type SendGuessResult struct {
	HostID            int64
	Guess             domain.GuessPayload
	Record            domain.QnA
	RemainingAttempts int
}

type SendGuessUseCase interface {
	Execute(ctx context.Context, roomID, userID int64, guess string) (*SendGuessResult, error)
}

type sendGuessUseCase struct {
	registry *game.Registry
}

func NewSendGuessUseCase(registry *game.Registry) SendGuessUseCase {
	return &sendGuessUseCase{registry: registry}
}

func (u *sendGuessUseCase) Execute(ctx context.Context, roomID, userID int64, guess string) (*SendGuessResult, error) {
	room, round, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}
	defer room.Unlock()

	if _, err := requireMember(room, userID); err != nil {
		return nil, err
	}
	if userID == room.HostID {
		return nil, fmt.Errorf("%w: the host can not guess", domain.ErrInvalidInput)
	}
	player, ok := round.Player(userID)
	if !ok {
		return nil, fmt.Errorf("%w: user %d is not playing this round", domain.ErrInvalidInput, userID)
	}
	if err := player.SpendAttempt(); err != nil {
		return nil, err
	}

	round.EnqueueGuess(game.GuessAttempt{SenderID: userID, Guess: guess})
	return &SendGuessResult{
		HostID: room.HostID,
		Guess:  domain.GuessPayload{SenderID: userID, Guess: guess},
		Record: domain.QnA{
			Type:    domain.HistoryGuess,
			ActorID: userID,
			Text:    guess,
			Status:  domain.AnswerPending,
		},
		RemainingAttempts: player.Attempts(),
	}, nil
}
