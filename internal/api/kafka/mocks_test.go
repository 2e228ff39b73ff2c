package kafkaHandler

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCreateUserUseCase struct {
	mock.Mock
}

func (m *MockCreateUserUseCase) Execute(ctx context.Context, id int64, nickname string) error {
	return m.Called(ctx, id, nickname).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, msgType string, payload any) error {
	return m.Called(ctx, topic, msgType, payload).Error(0)
}
