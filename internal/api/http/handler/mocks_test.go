package httpHandler

import (
	"context"

	"riddle-service/domain"

	"github.com/stretchr/testify/mock"
)

type MockGetRankingUseCase struct {
	mock.Mock
}

func (m *MockGetRankingUseCase) Execute(ctx context.Context, limit int) (int, []domain.RankingEntry, error) {
	args := m.Called(ctx, limit)
	entries, _ := args.Get(1).([]domain.RankingEntry)
	return args.Int(0), entries, args.Error(2)
}

type MockCreatePuzzleUseCase struct {
	mock.Mock
}

func (m *MockCreatePuzzleUseCase) Execute(ctx context.Context, title, content, answer string) (int, *domain.Puzzle, error) {
	args := m.Called(ctx, title, content, answer)
	puzzle, _ := args.Get(1).(*domain.Puzzle)
	return args.Int(0), puzzle, args.Error(2)
}

type MockGetRoomsUseCase struct {
	mock.Mock
}

func (m *MockGetRoomsUseCase) Execute(ctx context.Context, state string) (int, domain.RoomListResponse, error) {
	args := m.Called(ctx, state)
	return args.Int(0), args.Get(1).(domain.RoomListResponse), args.Error(2)
}
