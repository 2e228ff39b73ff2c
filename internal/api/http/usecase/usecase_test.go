package httpUsecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"riddle-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetRankingUseCase_Limits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc      string
		requested int
		queried   int
	}{
		{desc: "missing limit uses default", requested: 0, queried: DefaultRankingLimit},
		{desc: "negative limit uses default", requested: -4, queried: DefaultRankingLimit},
		{desc: "in range passes through", requested: 25, queried: 25},
		{desc: "above max is capped", requested: 500, queried: MaxRankingLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			ranking := new(MockRankingReader)
			entries := []domain.RankingEntry{{UserID: 1, Wins: 4}}
			ranking.On("TopWinners", mock.Anything, tc.queried).Return(entries, nil).Once()

			status, got, err := NewGetRankingUseCase(ranking).Execute(context.Background(), tc.requested)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, entries, got)
			ranking.AssertExpectations(t)
		})
	}
}

func TestGetRankingUseCase_StoreFailure(t *testing.T) {
	t.Parallel()
	ranking := new(MockRankingReader)
	ranking.On("TopWinners", mock.Anything, DefaultRankingLimit).Return(nil, errors.New("redis down"))

	status, _, err := NewGetRankingUseCase(ranking).Execute(context.Background(), 0)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestCreatePuzzleUseCase(t *testing.T) {
	t.Parallel()

	t.Run("stores trimmed puzzle", func(t *testing.T) {
		t.Parallel()
		store := new(MockCustomPuzzleStore)
		store.On("SaveCustomPuzzle", mock.Anything, domain.Puzzle{
			Source: domain.SourceCustom, Title: "Lamp", Content: "The lamp is off.", Answer: "It is daytime.",
		}).Return("c-1", nil).Once()

		status, puzzle, err := NewCreatePuzzleUseCase(store).Execute(context.Background(), " Lamp ", "The lamp is off.", " It is daytime.")

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "c-1", puzzle.ID)
		assert.Equal(t, domain.SourceCustom, puzzle.Source)
		store.AssertExpectations(t)
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		t.Parallel()
		store := new(MockCustomPuzzleStore)

		status, _, err := NewCreatePuzzleUseCase(store).Execute(context.Background(), "Lamp", "   ", "x")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, http.StatusBadRequest, status)
		store.AssertNotCalled(t, "SaveCustomPuzzle", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		store := new(MockCustomPuzzleStore)
		store.On("SaveCustomPuzzle", mock.Anything, mock.Anything).Return("", domain.ErrInternal)

		status, _, err := NewCreatePuzzleUseCase(store).Execute(context.Background(), "a", "b", "c")

		assert.ErrorIs(t, err, domain.ErrInternal)
		assert.Equal(t, http.StatusInternalServerError, status)
	})
}

func TestGetRoomsUseCase(t *testing.T) {
	t.Parallel()
	rooms := new(MockRoomLister)
	list := domain.RoomListResponse{Rooms: []domain.RoomResponse{{RoomID: 2}}, TotalCount: 1, State: "WAITING"}
	rooms.On("Execute", mock.Anything, "WAITING").Return(list)

	status, got, err := NewGetRoomsUseCase(rooms).Execute(context.Background(), "WAITING")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, list, got)
}

func TestCreateUserUseCase(t *testing.T) {
	t.Parallel()
	store := new(MockUserStore)
	store.On("UpsertUser", mock.Anything, int64(5), "kim").Return(nil).Once()

	require.NoError(t, NewCreateUserUseCase(store).Execute(context.Background(), 5, "kim"))
	store.AssertExpectations(t)
}
