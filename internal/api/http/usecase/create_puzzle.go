package httpUsecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"riddle-service/domain"

	"go.uber.org/zap"
)

type CreatePuzzleUseCase interface {
	Execute(ctx context.Context, title, content, answer string) (int, *domain.Puzzle, error)
}

type createPuzzleUseCase struct {
	store CustomPuzzleStore
}

func NewCreatePuzzleUseCase(store CustomPuzzleStore) CreatePuzzleUseCase {
	return &createPuzzleUseCase{
		store: store,
	}
}

func (u *createPuzzleUseCase) Execute(ctx context.Context, title, content, answer string) (int, *domain.Puzzle, error) {
	puzzle := domain.Puzzle{
		Source:  domain.SourceCustom,
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
		Answer:  strings.TrimSpace(answer),
	}
	if puzzle.Title == "" || puzzle.Content == "" || puzzle.Answer == "" {
		return http.StatusBadRequest, nil, fmt.Errorf("%w: title, content and answer are required", domain.ErrInvalidInput)
	}

	id, err := u.store.SaveCustomPuzzle(ctx, puzzle)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return http.StatusBadRequest, nil, err
		default:
			return http.StatusInternalServerError, nil, err
		}
	}
	puzzle.ID = id
	zap.L().Info("custom puzzle created", zap.String("puzzle_id", id))
	return http.StatusCreated, &puzzle, nil
}
