package wsHandler

import (
	"context"
	"errors"
	"time"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/game"
	"riddle-service/internal/notify"

	"go.uber.org/zap"
)

const timeoutBudget = 10 * time.Second

// EndGameHandler closes rounds whose deadline passed.
type EndGameHandler struct {
	usecase  wsUsecase.EndGameUseCase
	notifier Notifier
}

func NewEndGameHandler(usecase wsUsecase.EndGameUseCase, notifier Notifier) *EndGameHandler {
	return &EndGameHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *EndGameHandler) HandleTimeout(roomID int64, round *game.Game) {
	ctx, cancel := context.WithTimeout(context.Background(), timeoutBudget)
	defer cancel()

	summary, err := h.usecase.Execute(ctx, roomID, round)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			zap.L().Debug("Deadline fired for a finished round", zap.Int64("room_id", roomID))
			return
		}
		zap.L().Error("Failed to end round on timeout", zap.Int64("room_id", roomID), zap.Error(err))
		return
	}
	h.notifier.SendToTopic(ctx, notify.RoomTopic(roomID), domain.EventEndGame, summary)
}
