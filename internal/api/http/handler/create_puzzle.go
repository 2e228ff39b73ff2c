package httpHandler

import (
	"context"

	"riddle-service/domain"
	httpUsecase "riddle-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type CreatePuzzleRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=2000"`
	Answer  string `json:"answer" validate:"required,max=1000"`
}

type CreatePuzzleResponse struct {
	PuzzleID string              `json:"puzzleId"`
	Source   domain.PuzzleSource `json:"source"`
}

type CreatePuzzleHandler struct {
	usecase httpUsecase.CreatePuzzleUseCase
}

func NewCreatePuzzleHandler(usecase httpUsecase.CreatePuzzleUseCase) *CreatePuzzleHandler {
	return &CreatePuzzleHandler{
		usecase: usecase,
	}
}

func (h *CreatePuzzleHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *CreatePuzzleRequest) (*CreatePuzzleResponse, int, error) {
	status, puzzle, err := h.usecase.Execute(ctx, req.Title, req.Content, req.Answer)
	if err != nil {
		return nil, status, err
	}
	return &CreatePuzzleResponse{PuzzleID: puzzle.ID, Source: puzzle.Source}, status, nil
}
