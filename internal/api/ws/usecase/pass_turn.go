package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type PassTurnUseCase interface {
	Execute(ctx context.Context, roomID, userID int64) (*domain.NextTurn, error)
}

type passTurnUseCase struct {
	registry *game.Registry
	users    UserRepository
}

func NewPassTurnUseCase(registry *game.Registry, users UserRepository) PassTurnUseCase {
	return &passTurnUseCase{
		registry: registry,
		users:    users,
	}
}

// Execute hands the turn on. An unanswered question is dropped; queued
// guesses stay queued.
func (u *passTurnUseCase) Execute(ctx context.Context, roomID, userID int64) (*domain.NextTurn, error) {
	room, round, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}
	if !round.IsCurrentQuestioner(userID) {
		room.Unlock()
		return nil, fmt.Errorf("%w: it is not your turn", domain.ErrInvalidInput)
	}
	round.AdvanceTurn()
	next := nextTurn(room, round)
	room.Unlock()

	refreshNickname(ctx, u.users, next)
	return next, nil
}
