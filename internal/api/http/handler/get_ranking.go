package httpHandler

import (
	"context"

	"riddle-service/domain"
	httpUsecase "riddle-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRankingRequest struct {
	Limit int `query:"limit" validate:"gte=0"`
}

type GetRankingResponse struct {
	Ranking []domain.RankingEntry `json:"ranking"`
}

type GetRankingHandler struct {
	usecase httpUsecase.GetRankingUseCase
}

func NewGetRankingHandler(usecase httpUsecase.GetRankingUseCase) *GetRankingHandler {
	return &GetRankingHandler{
		usecase: usecase,
	}
}

func (h *GetRankingHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRankingRequest) (*GetRankingResponse, int, error) {
	status, entries, err := h.usecase.Execute(ctx, req.Limit)
	if err != nil {
		return nil, status, err
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	return &GetRankingResponse{Ranking: entries}, status, nil
}
