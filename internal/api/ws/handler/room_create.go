package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

type CreateRoomRequest struct {
	MaxPlayers   int    `json:"maxPlayers" validate:"required,min=2,max=10"`
	TimeLimit    int    `json:"timeLimit" validate:"required,min=1,max=60"`
	Title        string `json:"title" validate:"required,max=50"`
	PuzzleID     string `json:"puzzleId" validate:"required"`
	PuzzleSource string `json:"puzzleSource" validate:"required,oneof=ORIGINAL CUSTOM"`
}

type CreateRoomHandler struct {
	usecase  wsUsecase.CreateRoomUseCase
	notifier Notifier
	subs     TopicSubscriber
}

func NewCreateRoomHandler(usecase wsUsecase.CreateRoomUseCase, notifier Notifier, subs TopicSubscriber) *CreateRoomHandler {
	return &CreateRoomHandler{
		usecase:  usecase,
		notifier: notifier,
		subs:     subs,
	}
}

func (h *CreateRoomHandler) Handle(ctx context.Context, sender domain.Identity, req *CreateRoomRequest) error {
	res, err := h.usecase.Execute(ctx, sender, domain.RoomSettings{
		MaxPlayers:   req.MaxPlayers,
		TimeLimit:    req.TimeLimit,
		Title:        req.Title,
		PuzzleID:     req.PuzzleID,
		PuzzleSource: domain.PuzzleSource(req.PuzzleSource),
	})
	if err != nil {
		return err
	}
	announceLeave(ctx, h.notifier, h.subs, res.Left)

	h.subs.Subscribe(sender.UserID, notify.RoomTopics(res.HostView.RoomID)...)
	h.notifier.SendToUser(ctx, sender.UserID, domain.EventRoomCreated, res.HostView)
	h.notifier.SendToTopic(ctx, notify.TopicLobby, domain.EventRoomCreated, res.LobbyView)
	return nil
}
