package httpUsecase

import (
	"context"

	"riddle-service/domain"

	"github.com/stretchr/testify/mock"
)

type MockRankingReader struct {
	mock.Mock
}

func (m *MockRankingReader) TopWinners(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(0).([]domain.RankingEntry)
	return entries, args.Error(1)
}

type MockCustomPuzzleStore struct {
	mock.Mock
}

func (m *MockCustomPuzzleStore) SaveCustomPuzzle(ctx context.Context, puzzle domain.Puzzle) (string, error) {
	args := m.Called(ctx, puzzle)
	return args.String(0), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) UpsertUser(ctx context.Context, id int64, nickname string) error {
	return m.Called(ctx, id, nickname).Error(0)
}

type MockRoomLister struct {
	mock.Mock
}

func (m *MockRoomLister) Execute(ctx context.Context, state string) domain.RoomListResponse {
	return m.Called(ctx, state).Get(0).(domain.RoomListResponse)
}
