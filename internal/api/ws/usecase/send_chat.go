package wsUsecase

import (
	"context"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type SendChatUseCase interface {
	Execute(ctx context.Context, roomID, userID int64, message string) (*domain.ChatMessage, error)
}

type sendChatUseCase struct {
	registry *game.Registry
	now      func() time.Time
}

func NewSendChatUseCase(registry *game.Registry) SendChatUseCase {
	return &sendChatUseCase{registry: registry, now: time.Now}
}

func (u *sendChatUseCase) Execute(ctx context.Context, roomID, userID int64, message string) (*domain.ChatMessage, error) {
	room, err := u.registry.Get(roomID)
	if err != nil {
		return nil, err
	}
	room.RLock()
	defer room.RUnlock()

	player, err := requireMember(room, userID)
	if err != nil {
		return nil, err
	}
	return &domain.ChatMessage{
		SenderID:  userID,
		Nickname:  player.Nickname,
		Message:   message,
		Timestamp: u.now().UTC(),
	}, nil
}
