package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type SendChatRequest struct {
	RoomID  int64  `json:"roomId" validate:"required,gt=0"`
	Message string `json:"message" validate:"required,max=500"`
}

type SendChatHandler struct {
	usecase  wsUsecase.SendChatUseCase
	notifier Notifier
}

func NewSendChatHandler(usecase wsUsecase.SendChatUseCase, notifier Notifier) *SendChatHandler {
	return &SendChatHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *SendChatHandler) Handle(ctx context.Context, sender domain.Identity, req *SendChatRequest) error {
	msg, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID, req.Message)
	if err != nil {
		return err
	}
	h.notifier.SendToTopic(ctx, notify.ChatTopic(req.RoomID), domain.EventChat, msg)
	return nil
}
