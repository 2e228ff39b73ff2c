package httpUsecase

import (
	"context"
	"errors"
	"net/http"

	"riddle-service/domain"
)

const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 50
)

type GetRankingUseCase interface {
	Execute(ctx context.Context, limit int) (int, []domain.RankingEntry, error)
}

type getRankingUseCase struct {
	ranking RankingReader
}

func NewGetRankingUseCase(ranking RankingReader) GetRankingUseCase {
	return &getRankingUseCase{
		ranking: ranking,
	}
}

func (u *getRankingUseCase) Execute(ctx context.Context, limit int) (int, []domain.RankingEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultRankingLimit
	case limit > MaxRankingLimit:
		limit = MaxRankingLimit
	}

	entries, err := u.ranking.TopWinners(ctx, limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return http.StatusBadRequest, nil, err
		default:
			return http.StatusInternalServerError, nil, err
		}
	}
	return http.StatusOK, entries, nil
}
