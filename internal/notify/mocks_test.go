package notify

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	args := m.Called(ctx, channel, payload)
	return args.Error(0)
}
