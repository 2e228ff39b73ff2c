package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type StartGameRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type StartGameHandler struct {
	usecase  wsUsecase.StartGameUseCase
	notifier Notifier
}

func NewStartGameHandler(usecase wsUsecase.StartGameUseCase, notifier Notifier) *StartGameHandler {
	return &StartGameHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *StartGameHandler) Handle(ctx context.Context, sender domain.Identity, req *StartGameRequest) error {
	info, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID)
	if err != nil {
		return err
	}
	h.notifier.SendToTopic(ctx, notify.RoomTopic(req.RoomID), domain.EventGameStarted, info)
	return nil
}
