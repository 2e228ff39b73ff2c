package httpUsecase

import (
	"context"

	"riddle-service/domain"
)

type UserStore interface {
	UpsertUser(ctx context.Context, id int64, nickname string) error
}

type RankingReader interface {
	TopWinners(ctx context.Context, limit int) ([]domain.RankingEntry, error)
}

type CustomPuzzleStore interface {
	SaveCustomPuzzle(ctx context.Context, puzzle domain.Puzzle) (string, error)
}

type RoomLister interface {
	Execute(ctx context.Context, state string) domain.RoomListResponse
}
