package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type RespondGuessRequest struct {
	RoomID   int64  `json:"roomId" validate:"required,gt=0"`
	SenderID int64  `json:"senderId" validate:"required,gt=0"`
	Guess    string `json:"guess" validate:"required"`
	Verdict  string `json:"answer" validate:"required,oneof=CORRECT INCORRECT"`
}

type RespondGuessHandler struct {
	usecase  wsUsecase.RespondGuessUseCase
	notifier Notifier
}

func NewRespondGuessHandler(usecase wsUsecase.RespondGuessUseCase, notifier Notifier) *RespondGuessHandler {
	return &RespondGuessHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *RespondGuessHandler) Handle(ctx context.Context, sender domain.Identity, req *RespondGuessRequest) error {
	res, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID, wsUsecase.RespondGuessParams{
		SenderID: req.SenderID,
		Guess:    req.Guess,
		Verdict:  domain.AnswerStatus(req.Verdict),
	})
	if err != nil {
		return err
	}

	h.notifier.SendToTopic(ctx, notify.ChatTopic(req.RoomID), domain.EventRespondGuess, res.Record)
	if res.Summary != nil {
		h.notifier.SendToTopic(ctx, notify.RoomTopic(req.RoomID), domain.EventEndGame, res.Summary)
		return nil
	}

	h.notifier.SendToTopic(ctx, notify.HistoryTopic(req.RoomID), domain.EventGuess, res.Record)
	if res.NextGuess != nil {
		h.notifier.SendToUser(ctx, res.HostID, domain.EventGuessSend, res.NextGuess)
		return nil
	}
	announceNextTurn(ctx, h.notifier, res.HostID, res.NextTurn)
	return nil
}
