package wsHandler

import (
	"context"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/notify"
)

// announceLeave publishes everything a departure changes.
func announceLeave(ctx context.Context, n Notifier, subs TopicSubscriber, res *wsUsecase.LeaveRoomResult) {
	if res == nil {
		return
	}
	subs.Unsubscribe(res.UserID, notify.RoomTopics(res.RoomID)...)

	n.SendToTopic(ctx, notify.RoomTopic(res.RoomID), domain.EventPlayerLeaving, domain.PlayerLeaving{
		RoomID:   res.RoomID,
		UserID:   res.UserID,
		Nickname: res.Nickname,
	})
	n.SendToUser(ctx, res.UserID, domain.EventRoomLeft, domain.RoomRef{RoomID: res.RoomID})

	switch {
	case res.Deleted:
		n.SendToTopic(ctx, notify.TopicLobby, domain.EventRoomDeleted, domain.RoomRef{RoomID: res.RoomID})
		return
	case res.NewHost != nil:
		n.SendToTopic(ctx, notify.RoomTopic(res.RoomID), domain.EventHostChanged, res.NewHost)
	}
	n.SendToTopic(ctx, notify.TopicLobby, domain.EventRoomUpdated, res.Room)

	if res.Summary != nil {
		n.SendToTopic(ctx, notify.RoomTopic(res.RoomID), domain.EventEndGame, res.Summary)
		return
	}
	if res.NextTurn != nil {
		n.SendToUser(ctx, res.NextTurn.NextPlayerID, domain.EventNextTurn, res.NextTurn)
	}
	if res.NextGuess != nil {
		n.SendToUser(ctx, res.Room.HostID, domain.EventGuessSend, res.NextGuess)
	}
}

// announceNextTurn tells the host and the new questioner whose turn it is.
func announceNextTurn(ctx context.Context, n Notifier, hostID int64, next *domain.NextTurn) {
	if next == nil {
		return
	}
	n.SendToUser(ctx, hostID, domain.EventNextTurn, next)
	if next.NextPlayerID != hostID {
		n.SendToUser(ctx, next.NextPlayerID, domain.EventNextTurn, next)
	}
}
