package wsHandler

import (
	"context"
	"sync"

	"riddle-service/domain"
	wsUsecase "riddle-service/internal/api/ws/usecase"
	"riddle-service/internal/game"

	"github.com/stretchr/testify/mock"
)

// sent is one event handed to the notifier. Exactly one of Topic and
// UserID is set.
type sent struct {
	Topic   string
	UserID  int64
	Event   string
	Payload any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sent
}

func (n *recordingNotifier) SendToUser(_ context.Context, userID int64, event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sent{UserID: userID, Event: event, Payload: payload})
}

func (n *recordingNotifier) SendToTopic(_ context.Context, topic, event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sent{Topic: topic, Event: event, Payload: payload})
}

func (n *recordingNotifier) all() []sent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sent(nil), n.events...)
}

// routes drops payloads so tests can compare destinations and event types.
func (n *recordingNotifier) routes() []sent {
	var out []sent
	for _, e := range n.all() {
		e.Payload = nil
		out = append(out, e)
	}
	return out
}

type MockSubscriber struct {
	mock.Mock
}

func (m *MockSubscriber) Subscribe(userID int64, topics ...string) {
	m.Called(userID, topics)
}

func (m *MockSubscriber) Unsubscribe(userID int64, topics ...string) {
	m.Called(userID, topics)
}

type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(key string) bool {
	return m.Called(key).Bool(0)
}

type MockRoomLocator struct {
	mock.Mock
}

func (m *MockRoomLocator) CurrentRoomOf(userID int64) (int64, bool) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Bool(1)
}

type MockCreateRoomUseCase struct {
	mock.Mock
}

func (m *MockCreateRoomUseCase) Execute(ctx context.Context, creator domain.Identity, settings domain.RoomSettings) (*wsUsecase.CreateRoomResult, error) {
	args := m.Called(ctx, creator, settings)
	res, _ := args.Get(0).(*wsUsecase.CreateRoomResult)
	return res, args.Error(1)
}

type MockJoinRoomUseCase struct {
	mock.Mock
}

func (m *MockJoinRoomUseCase) Execute(ctx context.Context, joiner domain.Identity, roomID int64) (*wsUsecase.JoinRoomResult, error) {
	args := m.Called(ctx, joiner, roomID)
	res, _ := args.Get(0).(*wsUsecase.JoinRoomResult)
	return res, args.Error(1)
}

type MockLeaveRoomUseCase struct {
	mock.Mock
}

func (m *MockLeaveRoomUseCase) Execute(ctx context.Context, userID, roomID int64) (*wsUsecase.LeaveRoomResult, error) {
	args := m.Called(ctx, userID, roomID)
	res, _ := args.Get(0).(*wsUsecase.LeaveRoomResult)
	return res, args.Error(1)
}

type MockRespondGuessUseCase struct {
	mock.Mock
}

func (m *MockRespondGuessUseCase) Execute(ctx context.Context, roomID, userID int64, params wsUsecase.RespondGuessParams) (*wsUsecase.RespondGuessResult, error) {
	args := m.Called(ctx, roomID, userID, params)
	res, _ := args.Get(0).(*wsUsecase.RespondGuessResult)
	return res, args.Error(1)
}

type MockEndGameUseCase struct {
	mock.Mock
}

func (m *MockEndGameUseCase) Execute(ctx context.Context, roomID int64, round *game.Game) (*domain.EndSummary, error) {
	args := m.Called(ctx, roomID, round)
	res, _ := args.Get(0).(*domain.EndSummary)
	return res, args.Error(1)
}
