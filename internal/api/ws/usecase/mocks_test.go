package wsUsecase

import (
	"context"
	"sync"
	"time"

	"riddle-service/domain"
	"riddle-service/internal/game"

	"github.com/stretchr/testify/mock"
)

type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetPuzzle(ctx context.Context, id string, source domain.PuzzleSource) (*domain.Puzzle, error) {
	args := m.Called(ctx, id, source)
	if p, ok := args.Get(0).(*domain.Puzzle); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockResultRecorder struct {
	mock.Mock
}

func (m *MockResultRecorder) RecordRound(ctx context.Context, result domain.RoundResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

type MockDeadlineScheduler struct {
	mock.Mock
}

func (m *MockDeadlineScheduler) Arm(roomID int64, d time.Duration, onTimeout func()) {
	m.Called(roomID, d, onTimeout)
}

func (m *MockDeadlineScheduler) Cancel(roomID int64) {
	m.Called(roomID)
}

func (m *MockDeadlineScheduler) Elapsed(roomID int64) string {
	args := m.Called(roomID)
	return args.String(0)
}

// recordingTimeouts remembers every timeout it is handed and forwards it.
type recordingTimeouts struct {
	mu      sync.Mutex
	calls   []int64
	forward func(roomID int64, round *game.Game)
}

func (r *recordingTimeouts) HandleTimeout(roomID int64, round *game.Game) {
	r.mu.Lock()
	r.calls = append(r.calls, roomID)
	forward := r.forward
	r.mu.Unlock()
	if forward != nil {
		forward(roomID, round)
	}
}

func (r *recordingTimeouts) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// blockingRecorder holds every RecordRound call until release is closed.
type blockingRecorder struct {
	release chan struct{}
	got     chan domain.RoundResult
}

func newBlockingRecorder() *blockingRecorder {
	return &blockingRecorder{
		release: make(chan struct{}),
		got:     make(chan domain.RoundResult, 1),
	}
}

func (r *blockingRecorder) RecordRound(ctx context.Context, result domain.RoundResult) error {
	<-r.release
	r.got <- result
	return nil
}
