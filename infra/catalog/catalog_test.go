package catalog

import (
	"context"
	"testing"

	"riddle-service/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOriginalStore struct {
	mock.Mock
}

func (m *MockOriginalStore) GetPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Puzzle)
	return p, args.Error(1)
}

type MockCustomStore struct {
	mock.Mock
}

func (m *MockCustomStore) GetCustomPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Puzzle)
	return p, args.Error(1)
}

func TestCatalog_GetPuzzle(t *testing.T) {
	t.Parallel()
	original := new(MockOriginalStore)
	custom := new(MockCustomStore)
	original.On("GetPuzzle", mock.Anything, "elevator").Return(&domain.Puzzle{ID: "elevator", Source: domain.SourceOriginal}, nil)
	custom.On("GetCustomPuzzle", mock.Anything, "c-1").Return(&domain.Puzzle{ID: "c-1", Source: domain.SourceCustom}, nil)
	custom.On("GetCustomPuzzle", mock.Anything, "gone").Return(nil, domain.ErrNotFound)

	c := New(original, custom)
	ctx := context.Background()

	p, err := c.GetPuzzle(ctx, "elevator", domain.SourceOriginal)
	require.NoError(t, err)
	assert.Equal(t, "elevator", p.ID)

	p, err = c.GetPuzzle(ctx, "c-1", domain.SourceCustom)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceCustom, p.Source)

	_, err = c.GetPuzzle(ctx, "gone", domain.SourceCustom)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.GetPuzzle(ctx, "elevator", domain.PuzzleSource("DAILY"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
