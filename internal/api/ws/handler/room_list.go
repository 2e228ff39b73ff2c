package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
)

type ListRoomsRequest struct {
	State string `json:"state" validate:"max=16"`
}

type ListRoomsHandler struct {
	usecase  wsUsecase.ListRoomsUseCase
	notifier Notifier
}

func NewListRoomsHandler(usecase wsUsecase.ListRoomsUseCase, notifier Notifier) *ListRoomsHandler {
	return &ListRoomsHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *ListRoomsHandler) Handle(ctx context.Context, sender domain.Identity, req *ListRoomsRequest) error {
	h.notifier.SendToUser(ctx, sender.UserID, domain.EventRoomList, h.usecase.Execute(ctx, req.State))
	return nil
}
