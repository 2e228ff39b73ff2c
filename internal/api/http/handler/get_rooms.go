package httpHandler

import (
	"context"

	"riddle-service/domain"
	httpUsecase "riddle-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetRoomsRequest struct {
	State string `query:"state"`
}

type GetRoomsResponse struct {
	domain.RoomListResponse
}

type GetRoomsHandler struct {
	usecase httpUsecase.GetRoomsUseCase
}

func NewGetRoomsHandler(usecase httpUsecase.GetRoomsUseCase) *GetRoomsHandler {
	return &GetRoomsHandler{
		usecase: usecase,
	}
}

func (h *GetRoomsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *GetRoomsRequest) (*GetRoomsResponse, int, error) {
	status, rooms, err := h.usecase.Execute(ctx, req.State)
	if err != nil {
		return nil, status, err
	}
	return &GetRoomsResponse{RoomListResponse: rooms}, status, nil
}
