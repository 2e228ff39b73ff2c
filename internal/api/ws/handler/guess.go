package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type SendGuessRequest struct {
	RoomID int64  `json:"roomId" validate:"required,gt=0"`
	Guess  string `json:"guess" validate:"required,max=200"`
}

type SendGuessHandler struct {
	usecase  wsUsecase.SendGuessUseCase
	notifier Notifier
}

func NewSendGuessHandler(usecase wsUsecase.SendGuessUseCase, notifier Notifier) *SendGuessHandler {
	return &SendGuessHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *SendGuessHandler) Handle(ctx context.Context, sender domain.Identity, req *SendGuessRequest) error {
	res, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID, req.Guess)
	if err != nil {
		return err
	}
	h.notifier.SendToUser(ctx, sender.UserID, domain.EventGuessSend, domain.GuessReceipt{
		SenderID:          res.Guess.SenderID,
		Guess:             res.Guess.Guess,
		RemainingAttempts: res.RemainingAttempts,
	})
	h.notifier.SendToTopic(ctx, notify.ChatTopic(req.RoomID), domain.EventRespondGuess, res.Record)
	return nil
}
