package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
)

type PassTurnRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type PassTurnHandler struct {
	usecase  wsUsecase.PassTurnUseCase
	notifier Notifier
}

func NewPassTurnHandler(usecase wsUsecase.PassTurnUseCase, notifier Notifier) *PassTurnHandler {
	return &PassTurnHandler{
		usecase:  usecase,
		notifier: notifier,
	}
}

func (h *PassTurnHandler) Handle(ctx context.Context, sender domain.Identity, req *PassTurnRequest) error {
	next, err := h.usecase.Execute(ctx, req.RoomID, sender.UserID)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}
	h.notifier.SendToUser(ctx, sender.UserID, domain.EventNextTurn, next)
	if next.NextPlayerID != sender.UserID {
		h.notifier.SendToUser(ctx, next.NextPlayerID, domain.EventNextTurn, next)
	}
	return nil
}
