package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"

	"go.uber.org/zap"
)

type LeaveRoomRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type LeaveRoomHandler struct {
	usecase  wsUsecase.LeaveRoomUseCase
	notifier Notifier
	subs     TopicSubscriber
	rooms    RoomLocator
}

func NewLeaveRoomHandler(usecase wsUsecase.LeaveRoomUseCase, notifier Notifier, subs TopicSubscriber, rooms RoomLocator) *LeaveRoomHandler {
	return &LeaveRoomHandler{
		usecase:  usecase,
		notifier: notifier,
		subs:     subs,
		rooms:    rooms,
	}
}

func (h *LeaveRoomHandler) Handle(ctx context.Context, sender domain.Identity, req *LeaveRoomRequest) error {
	res, err := h.usecase.Execute(ctx, sender.UserID, req.RoomID)
	if err != nil {
		return err
	}
	announceLeave(ctx, h.notifier, h.subs, res)
	return nil
}

// HandleDisconnect runs the leave path for a user whose last connection
// closed.
func (h *LeaveRoomHandler) HandleDisconnect(ctx context.Context, userID int64) {
	roomID, ok := h.rooms.CurrentRoomOf(userID)
	if !ok {
		return
	}
	res, err := h.usecase.Execute(ctx, userID, roomID)
	if err != nil {
		zap.L().Warn("Failed to leave room on disconnect", zap.Int64("user_id", userID), zap.Int64("room_id", roomID), zap.Error(err))
		return
	}
	announceLeave(ctx, h.notifier, h.subs, res)
}
