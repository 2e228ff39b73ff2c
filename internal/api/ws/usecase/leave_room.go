package wsUsecase

import (
	"context"
	"fmt"

	"riddle-service/domain"
	"riddle-service/internal/game"

	"go.uber.org/zap"
)

type LeaveRoomResult struct {
	RoomID   int64
	UserID   int64
	Nickname string
	// Deleted is set when the leaver was the last member.
	Deleted bool
	NewHost *domain.PlayerResponse
	Room    domain.RoomResponse
	// NextTurn is set when the leaver held the turn in a running round.
	NextTurn *domain.NextTurn
	// NextGuess is set when the guess at the head of the queue changed.
	NextGuess *domain.GuessPayload
	// Summary is set when the departure left nobody able to guess.
	Summary *domain.EndSummary
}

type LeaveRoomUseCase interface {
	Execute(ctx context.Context, userID, roomID int64) (*LeaveRoomResult, error)
}

type leaveRoomUseCase struct {
	registry  *game.Registry
	deadlines DeadlineScheduler
	users     UserRepository
	recorder  ResultRecorder
}

func NewLeaveRoomUseCase(registry *game.Registry, deadlines DeadlineScheduler, users UserRepository, recorder ResultRecorder) LeaveRoomUseCase {
	return &leaveRoomUseCase{
		registry:  registry,
		deadlines: deadlines,
		users:     users,
		recorder:  recorder,
	}
}

func (u *leaveRoomUseCase) Execute(ctx context.Context, userID, roomID int64) (*LeaveRoomResult, error) {
	room, err := u.registry.Get(roomID)
	if err != nil {
		return nil, err
	}

	room.Lock()
	player, ok := room.Player(userID)
	if !ok {
		room.Unlock()
		return nil, fmt.Errorf("%w: user %d is not in room %d", domain.ErrInvalidInput, userID, roomID)
	}

	res := &LeaveRoomResult{RoomID: roomID, UserID: userID, Nickname: player.Nickname}

	var (
		turnChanged bool
		head        game.GuessAttempt
		hadHead     bool
		ended       *domain.RoundResult
	)
	if room.Game != nil {
		head, hadHead = room.Game.PeekGuess()
		turnChanged = room.Game.RemovePlayerFromTurn(userID)
	}
	departure, _ := room.RemovePlayer(userID)
	u.registry.UnbindUser(userID)
	if departure.NewHost != nil && room.Game != nil {
		room.Game.DropGuesses(departure.NewHost.UserID)
	}

	switch {
	case departure.Emptied:
		if room.Game != nil {
			u.deadlines.Cancel(roomID)
			room.Game = nil
		}
		room.State = domain.RoomWaiting
		u.registry.Delete(roomID)
		res.Deleted = true
	case room.Game != nil && room.Game.GuessesExhausted(room.HostID):
		summary, result := closeRound(room, room.Game, u.deadlines, domain.EndExhaustedAttempts, nil, "")
		res.Summary = &summary
		ended = &result
	case room.Game != nil:
		if turnChanged {
			res.NextTurn = nextTurn(room, room.Game)
		}
		if next, ok := room.Game.PeekGuess(); ok && hadHead && next != head {
			res.NextGuess = &domain.GuessPayload{SenderID: next.SenderID, Guess: next.Guess}
		}
	}
	if departure.NewHost != nil {
		host := departure.NewHost.Response()
		res.NewHost = &host
	}
	res.Room = room.Response(false)
	room.Unlock()

	if ended != nil {
		record(ctx, u.recorder, *ended)
	}
	refreshNickname(ctx, u.users, res.NextTurn)
	zap.L().Info("player left room", zap.Int64("room_id", roomID), zap.Int64("user_id", userID), zap.Bool("deleted", res.Deleted))
	return res, nil
}

// leaveCurrent takes the user out of whatever room they are in, if any.
func leaveCurrent(ctx context.Context, registry *game.Registry, leaver LeaveRoomUseCase, userID int64) (*LeaveRoomResult, error) {
	current, ok := registry.CurrentRoomOf(userID)
	if !ok {
		return nil, nil
	}
	return leaver.Execute(ctx, userID, current)
}
