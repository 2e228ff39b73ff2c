package wsUsecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"
	"riddle-service/internal/scheduler"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPuzzleID = "p-dragon"

func testPuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		ID:      testPuzzleID,
		Source:  domain.SourceOriginal,
		Title:   "The sleeping dragon",
		Content: "A dragon sleeps on a pile of gold and never wakes.",
		Answer:  "it is a painting",
	}
}

func ident(id int64) domain.Identity {
	return domain.Identity{UserID: id, Nickname: fmt.Sprintf("user-%d", id)}
}

type fixture struct {
	registry  *game.Registry
	deadlines *scheduler.Scheduler
	puzzles   *MockPuzzleRepository
	users     *MockUserRepository
	recorder  *MockResultRecorder
	timeouts  *recordingTimeouts

	leave           LeaveRoomUseCase
	create          CreateRoomUseCase
	join            JoinRoomUseCase
	list            ListRoomsUseCase
	start           StartGameUseCase
	question        SendQuestionUseCase
	respondQuestion RespondQuestionUseCase
	guess           SendGuessUseCase
	respondGuess    RespondGuessUseCase
	pass            PassTurnUseCase
	end             EndGameUseCase
	chat            SendChatUseCase
}

func newFixture(t *testing.T, timeUnit time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		registry:  game.NewRegistry(),
		deadlines: scheduler.New(),
		puzzles:   new(MockPuzzleRepository),
		users:     new(MockUserRepository),
		recorder:  new(MockResultRecorder),
		timeouts:  &recordingTimeouts{},
	}
	f.puzzles.On("GetPuzzle", mock.Anything, testPuzzleID, domain.SourceOriginal).Return(testPuzzle(), nil).Maybe()
	f.puzzles.On("GetPuzzle", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: puzzle", domain.ErrNotFound)).Maybe()
	f.users.On("GetUser", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrNotFound).Maybe()
	f.recorder.On("RecordRound", mock.Anything, mock.Anything).Return(nil).Maybe()

	f.leave = NewLeaveRoomUseCase(f.registry, f.deadlines, f.users, f.recorder)
	f.create = NewCreateRoomUseCase(f.registry, f.puzzles, f.leave)
	f.join = NewJoinRoomUseCase(f.registry, f.leave)
	f.list = NewListRoomsUseCase(f.registry)
	f.start = NewStartGameUseCase(f.registry, f.deadlines, f.timeouts, timeUnit)
	f.question = NewSendQuestionUseCase(f.registry)
	f.respondQuestion = NewRespondQuestionUseCase(f.registry, f.users)
	f.guess = NewSendGuessUseCase(f.registry)
	f.respondGuess = NewRespondGuessUseCase(f.registry, f.deadlines, f.users, f.recorder)
	f.pass = NewPassTurnUseCase(f.registry, f.users)
	f.end = NewEndGameUseCase(f.registry, f.deadlines, f.recorder)
	f.chat = NewSendChatUseCase(f.registry)
	return f
}

func defaultSettings() domain.RoomSettings {
	return domain.RoomSettings{
		MaxPlayers:   6,
		TimeLimit:    5,
		Title:        "riddles",
		PuzzleID:     testPuzzleID,
		PuzzleSource: domain.SourceOriginal,
	}
}

// openRoom creates a room hosted by host and seats guests in order.
func (f *fixture) openRoom(t *testing.T, host int64, guests ...int64) int64 {
	t.Helper()
	ctx := context.Background()
	created, err := f.create.Execute(ctx, ident(host), defaultSettings())
	require.NoError(t, err)
	roomID := created.HostView.RoomID
	for _, g := range guests {
		_, err := f.join.Execute(ctx, ident(g), roomID)
		require.NoError(t, err)
	}
	return roomID
}

func (f *fixture) startRound(t *testing.T, roomID, host int64) (*domain.GameInfo, *game.Game) {
	t.Helper()
	info, err := f.start.Execute(context.Background(), roomID, host)
	require.NoError(t, err)
	t.Cleanup(func() { f.deadlines.Cancel(roomID) })

	room, err := f.registry.Get(roomID)
	require.NoError(t, err)
	room.RLock()
	defer room.RUnlock()
	require.NotNil(t, room.Game)
	return info, room.Game
}

func (f *fixture) room(t *testing.T, roomID int64) *game.Room {
	t.Helper()
	room, err := f.registry.Get(roomID)
	require.NoError(t, err)
	return room
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting")
	}
}
