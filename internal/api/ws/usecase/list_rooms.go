package wsUsecase

import (
	"context"

	"riddle-service/domain"
	"riddle-service/internal/game"
)

type ListRoomsUseCase interface {
	Execute(ctx context.Context, state string) domain.RoomListResponse
}

type listRoomsUseCase struct {
	registry *game.Registry
}

func NewListRoomsUseCase(registry *game.Registry) ListRoomsUseCase {
	return &listRoomsUseCase{registry: registry}
}

// Execute lists every room, or only those in state. An unknown state
// matches nothing.
func (u *listRoomsUseCase) Execute(ctx context.Context, state string) domain.RoomListResponse {
	res := domain.RoomListResponse{Rooms: []domain.RoomResponse{}, State: state}

	var rooms []*game.Room
	if state == "" {
		rooms = u.registry.ListAll()
	} else {
		parsed, ok := domain.ParseRoomState(state)
		if !ok {
			return res
		}
		rooms = u.registry.ListByState(parsed)
	}

	for _, r := range rooms {
		r.RLock()
		res.Rooms = append(res.Rooms, r.Response(false))
		r.RUnlock()
	}
	res.TotalCount = len(res.Rooms)
	return res
}
