package wsUsecase

import (
	"context"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type PuzzleRepository interface {
	GetPuzzle(ctx context.Context, id string, source domain.PuzzleSource) (*domain.Puzzle, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id int64) (domain.User, error)
}

type DeadlineScheduler interface {
	Arm(roomID int64, d time.Duration, onTimeout func())
	Cancel(roomID int64)
	Elapsed(roomID int64) string
}

// TimeoutHandler is called from the scheduler goroutine when a round's
// deadline passes.
type TimeoutHandler interface {
	HandleTimeout(roomID int64, round *game.Game)
}

type ResultRecorder interface {
	RecordRound(ctx context.Context, result domain.RoundResult) error
}
