package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type SendQuestionRequest struct {
	RoomID   int64  `json:"roomId" validate:"required,gt=0"`
	Question string `json:"question" validate:"required,max=300"`
}

type SendQuestionHandler struct {
	usecase  wsUsecase.SendQuestionUseCase
	notifier Notifier
}

func NewSendQuestionHandler(usecase wsUsecase.SendQuestionUseCase, notifier Notifier) *SendQuestionHandler {
	return &SendQuestionHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *SendQuestionHandler) Handle(ctx context.Context, sender domain.Identity, req *SendQuestionRequest) error {
	q, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID, req.Question)
	if err != nil {
		return err
	}
	h.notifier.SendToUser(ctx, q.HostID, domain.EventQuestionSend, q)
	h.notifier.SendToTopic(ctx, notify.ChatTopic(req.RoomID), domain.EventQuestion, q)
	return nil
}
