package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type RespondQuestionRequest struct {
	RoomID       int64  `json:"roomId" validate:"required,gt=0"`
	QuestionerID int64  `json:"questionerId" validate:"required,gt=0"`
	Question     string `json:"question" validate:"required"`
	Answer       string `json:"answer" validate:"required,oneof=YES NO IRRELEVANT"`
}

type RespondQuestionHandler struct {
	usecase  wsUsecase.RespondQuestionUseCase
	notifier Notifier
}

func NewRespondQuestionHandler(usecase wsUsecase.RespondQuestionUseCase, notifier Notifier) *RespondQuestionHandler {
	return &RespondQuestionHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *RespondQuestionHandler) Handle(ctx context.Context, sender domain.Identity, req *RespondQuestionRequest) error {
	res, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID, wsUsecase.RespondQuestionParams{
		QuestionerID: req.QuestionerID,
		Question:     req.Question,
		Answer:       domain.AnswerStatus(req.Answer),
	})
	if err != nil {
		return err
	}

	payload := domain.AnswerPayload{QnA: res.Record, NextGuess: res.NextGuess}
	h.notifier.SendToTopic(ctx, notify.ChatTopic(req.RoomID), domain.EventRespondQuestion, payload)
	h.notifier.SendToUser(ctx, res.HostID, domain.EventRespondQuestion, payload)
	h.notifier.SendToTopic(ctx, notify.HistoryTopic(req.RoomID), domain.EventQuestion, res.Record)
	announceNextTurn(ctx, h.notifier, res.HostID, res.NextTurn)
	return nil
}
