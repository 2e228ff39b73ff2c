package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type EndGameUseCase interface {
	// Execute ends round on timeout. It fails with ErrNotFound when round
	// is no longer the room's active game.
	Execute(ctx context.Context, roomID int64, round *game.Game) (*domain.EndSummary, error)
}

type endGameUseCase struct {
	registry  *game.Registry
	deadlines DeadlineScheduler
	recorder  ResultRecorder
}

func NewEndGameUseCase(registry *game.Registry, deadlines DeadlineScheduler, recorder ResultRecorder) EndGameUseCase {
	return &endGameUseCase{
		registry:  registry,
		deadlines: deadlines,
		recorder:  recorder,
	}
}

func (u *endGameUseCase) Execute(ctx context.Context, roomID int64, round *game.Game) (*domain.EndSummary, error) {
	room, active, err := lockRound(u.registry, roomID)
	if err != nil {
		return nil, err
	}
	if round != nil && active != round {
		room.Unlock()
		return nil, fmt.Errorf("%w: round already finished in room %d", domain.ErrNotFound, roomID)
	}
	summary, result := closeRound(room, active, u.deadlines, domain.EndTimeout, nil, "")
	room.Unlock()

	record(ctx, u.recorder, result)
	return &summary, nil
}
