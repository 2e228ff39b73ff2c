package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type JoinRoomRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type JoinRoomHandler struct {
	usecase  wsUsecase.JoinRoomUseCase
	notifier Notifier
	subs     TopicSubscriber
}

func NewJoinRoomHandler(usecase wsUsecase.JoinRoomUseCase, notifier Notifier, subs TopicSubscriber) *JoinRoomHandler {
	return &JoinRoomHandler{
		usecase:  usecase,
		notifier: notifier,
		subs:     subs,
	}
}

func (h *JoinRoomHandler) Handle(ctx context.Context, sender domain.Identity, req *JoinRoomRequest) error {
	res, err := h.usecase.Execute(ctx, sender, req.RoomID)
	// The previous room may have been left even if this join failed.
	if res != nil {
		announceLeave(ctx, h.notifier, h.subs, res.Left)
	}
	if err != nil {
		return err
	}

	h.subs.Subscribe(sender.UserID, notify.RoomTopics(req.RoomID)...)
	h.notifier.SendToUser(ctx, sender.UserID, domain.EventRoomJoined, res.Room)
	h.notifier.SendToTopic(ctx, notify.RoomTopic(req.RoomID), domain.EventPlayerJoined, res.Player)
	h.notifier.SendToTopic(ctx, notify.TopicLobby, domain.EventRoomUpdated, res.Room)
	return nil
}
