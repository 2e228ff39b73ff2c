package handler

import (
	"context"

	"riddle-service/domain"

	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendToUser(ctx context.Context, userID int64, event string, payload any) {
	m.Called(ctx, userID, event, payload)
}

type MockCommandHandler struct {
	mock.Mock
}

func (m *MockCommandHandler) Handle(ctx context.Context, sender domain.Identity, req *pingRequest) error {
	args := m.Called(ctx, sender, req)
	return args.Error(0)
}
