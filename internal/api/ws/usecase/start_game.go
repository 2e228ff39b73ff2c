package wsUsecase

import (
	"context"
	"fmt"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"

	"go.uber.org/zap"
)

type StartGameUseCase interface {
	Execute(ctx context.Context, roomID, userID int64) (*domain.GameInfo, error)
}

type startGameUseCase struct {
	registry  *game.Registry
	deadlines DeadlineScheduler
	timeouts  TimeoutHandler
	timeUnit  time.Duration
	newGame   func(order []int64, players map[int64]*game.Player) (*game.Game, error)
}

// NewStartGameUseCase arms a deadline of the room's time limit multiplied
// by timeUnit for every round it starts.
func NewStartGameUseCase(registry *game.Registry, deadlines DeadlineScheduler, timeouts TimeoutHandler, timeUnit time.Duration) StartGameUseCase {
	return &startGameUseCase{
		registry:  registry,
		deadlines: deadlines,
		timeouts:  timeouts,
		timeUnit:  timeUnit,
		newGame:   game.NewGame,
	}
}

func (u *startGameUseCase) Execute(ctx context.Context, roomID, userID int64) (*domain.GameInfo, error) {
	room, err := u.registry.Get(roomID)
	if err != nil {
		return nil, err
	}

	room.Lock()
	defer room.Unlock()

	switch room.State {
	case domain.RoomStarting:
		return nil, fmt.Errorf("%w: game start in progress", domain.ErrConflict)
	case domain.RoomPlaying:
		return nil, fmt.Errorf("%w: game already in progress", domain.ErrConflict)
	}
	if err := validateStart(room, userID); err != nil {
		return nil, err
	}

	room.State = domain.RoomStarting
	round, err := u.newGame(room.Order(), room.Members())
	if err != nil {
		room.Game = nil
		room.State = domain.RoomWaiting
		zap.L().Error("Failed to build game", zap.Int64("room_id", roomID), zap.Error(err))
		return nil, fmt.Errorf("%w: could not start the game", domain.ErrInternal)
	}
	room.Game = round
	room.State = domain.RoomPlaying
	u.registry.Put(room)

	u.deadlines.Arm(roomID, time.Duration(room.TimeLimit)*u.timeUnit, func() {
		u.timeouts.HandleTimeout(roomID, round)
	})

	zap.L().Info("game started", zap.Int64("room_id", roomID), zap.Int64s("turn_order", round.TurnOrder()))
	return gameInfo(room, round), nil
}

func validateStart(room *game.Room, userID int64) error {
	if err := requireHost(room, userID, "start the game"); err != nil {
		return err
	}
	if room.Puzzle == nil {
		return fmt.Errorf("%w: no puzzle selected", domain.ErrInvalidInput)
	}
	if room.PlayerCount() < game.MinPlayersToStart {
		return fmt.Errorf("%w: at least %d players are needed to start", domain.ErrInvalidInput, game.MinPlayersToStart)
	}
	for _, p := range room.Players() {
		if p.State() != domain.PlayerReady {
			return fmt.Errorf("%w: %s is not ready", domain.ErrInvalidInput, p.Nickname)
		}
	}
	return nil
}

func gameInfo(room *game.Room, round *game.Game) *domain.GameInfo {
	info := &domain.GameInfo{
		RoomID:    room.ID,
		RoomState: room.State,
		GameStatus: domain.GameStatus{
			RemainingQuestions: round.RemainingQuestions(),
			TotalQuestions:     game.QuestionBudget,
		},
		TurnOrder: round.TurnOrder(),
		Players:   room.Response(false).Players,
	}
	if id, ok := round.CurrentQuestioner(); ok {
		info.CurrentTurn = domain.CurrentTurn{QuestionerID: id, TurnIndex: round.TurnIndex()}
		if p, ok := room.Player(id); ok {
			info.CurrentTurn.Nickname = p.Nickname
		}
	}
	return info
}
