package middleware

import (
	"context"

	"riddle-service/domain"

	"github.com/stretchr/testify/mock"
)

type MockSessionLookup struct {
	mock.Mock
}

func (m *MockSessionLookup) GetSession(ctx context.Context, token string) (domain.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Identity), args.Error(1)
}
