package httpUsecase

import (
	"context"
	"net/http"

	"riddle-service/domain"
)

type GetRoomsUseCase interface {
	Execute(ctx context.Context, state string) (int, domain.RoomListResponse, error)
}

type getRoomsUseCase struct {
	rooms RoomLister
}

func NewGetRoomsUseCase(rooms RoomLister) GetRoomsUseCase {
	return &getRoomsUseCase{
		rooms: rooms,
	}
}

func (u *getRoomsUseCase) Execute(ctx context.Context, state string) (int, domain.RoomListResponse, error) {
	return http.StatusOK, u.rooms.Execute(ctx, state), nil
}
