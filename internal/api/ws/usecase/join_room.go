package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type JoinRoomResult struct {
	Left   *LeaveRoomResult
	Player domain.PlayerResponse
	Room   domain.RoomResponse
}

type JoinRoomUseCase interface {
	Execute(ctx context.Context, joiner domain.Identity, roomID int64) (*JoinRoomResult, error)
}

type joinRoomUseCase struct {
	registry *game.Registry
	leaver   LeaveRoomUseCase
}

func NewJoinRoomUseCase(registry *game.Registry, leaver LeaveRoomUseCase) JoinRoomUseCase {
	return &joinRoomUseCase{
		registry: registry,
		leaver:   leaver,
	}
}

func (u *joinRoomUseCase) Execute(ctx context.Context, joiner domain.Identity, roomID int64) (*JoinRoomResult, error) {
	room, err := u.registry.Get(roomID)
	if err != nil {
		return nil, err
	}
	if current, ok := u.registry.CurrentRoomOf(joiner.UserID); ok && current == roomID {
		return nil, fmt.Errorf("%w: already in room %d", domain.ErrInvalidInput, roomID)
	}

	// Cheap check so a hopeless join doesn't cost the user their seat
	// elsewhere. The authoritative check runs again under the lock.
	room.RLock()
	joinable := room.CanJoin()
	room.RUnlock()
	if !joinable {
		return nil, fmt.Errorf("%w: room %d can not be joined", domain.ErrInvalidInput, roomID)
	}

	left, err := leaveCurrent(ctx, u.registry, u.leaver, joiner.UserID)
	if err != nil {
		return nil, err
	}

	room.Lock()
	defer room.Unlock()
	// An empty room has already been dropped from the registry.
	if room.IsEmpty() {
		return &JoinRoomResult{Left: left}, fmt.Errorf("%w: room %d", domain.ErrNotFound, roomID)
	}

	player := game.NewPlayer(joiner.UserID, joiner.Nickname, domain.RoleParticipant)
	if err := room.AddPlayer(player); err != nil {
		return &JoinRoomResult{Left: left}, err
	}
	u.registry.BindUser(joiner.UserID, roomID)

	return &JoinRoomResult{
		Left:   left,
		Player: player.Response(),
		Room:   room.Response(false),
	}, nil
}
