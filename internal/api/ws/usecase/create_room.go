package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"

	"go.uber.org/zap"
)

type CreateRoomResult struct {
	// Left is the room the creator was in before, if any.
	Left      *LeaveRoomResult
	HostView  domain.RoomResponse
	LobbyView domain.RoomResponse
}

type CreateRoomUseCase interface {
	Execute(ctx context.Context, creator domain.Identity, settings domain.RoomSettings) (*CreateRoomResult, error)
}

type createRoomUseCase struct {
	registry *game.Registry
	puzzles  PuzzleRepository
	leaver   LeaveRoomUseCase
}

func NewCreateRoomUseCase(registry *game.Registry, puzzles PuzzleRepository, leaver LeaveRoomUseCase) CreateRoomUseCase {
	return &createRoomUseCase{
		registry: registry,
		puzzles:  puzzles,
		leaver:   leaver,
	}
}

func (u *createRoomUseCase) Execute(ctx context.Context, creator domain.Identity, settings domain.RoomSettings) (*CreateRoomResult, error) {
	if settings.PuzzleSource != domain.SourceOriginal && settings.PuzzleSource != domain.SourceCustom {
		return nil, fmt.Errorf("%w: unknown puzzle source %q", domain.ErrInvalidInput, settings.PuzzleSource)
	}
	puzzle, err := u.puzzles.GetPuzzle(ctx, settings.PuzzleID, settings.PuzzleSource)
	if err != nil {
		return nil, err
	}

	left, err := leaveCurrent(ctx, u.registry, u.leaver, creator.UserID)
	if err != nil {
		return nil, err
	}

	room := game.NewRoom(u.registry.NextID(), settings.MaxPlayers, settings.TimeLimit, settings.Title, puzzle)
	room.Lock()
	defer room.Unlock()

	if err := room.AddPlayer(game.NewPlayer(creator.UserID, creator.Nickname, domain.RoleHost)); err != nil {
		return nil, err
	}
	u.registry.Put(room)
	u.registry.BindUser(creator.UserID, room.ID)

	zap.L().Info("room created", zap.Int64("room_id", room.ID), zap.Int64("user_id", creator.UserID))
	return &CreateRoomResult{
		Left:      left,
		HostView:  room.Response(true),
		LobbyView: room.Response(false),
	}, nil
}
