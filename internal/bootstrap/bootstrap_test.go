package bootstrap

import (
	"context"
	"errors"
	"testing"

	"riddle-service/pkg/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDisconnectHandler struct {
	mock.Mock
}

func (m *MockDisconnectHandler) HandleDisconnect(ctx context.Context, userID int64) {
	m.Called(userID)
}

type MockLimiterReset struct {
	mock.Mock
}

func (m *MockLimiterReset) Forget(key string) {
	m.Called(key)
}

type MockMessageHandler struct {
	mock.Mock
}

func (m *MockMessageHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	return m.Called(msg).Error(0)
}

func TestDisconnectChain_LeavesThenForgetsLimiter(t *testing.T) {
	t.Parallel()

	var order []string
	leave := new(MockDisconnectHandler)
	leave.On("HandleDisconnect", int64(42)).Run(func(mock.Arguments) { order = append(order, "leave") })
	limiter := new(MockLimiterReset)
	limiter.On("Forget", "42").Run(func(mock.Arguments) { order = append(order, "forget") })

	disconnectChain{leave: leave, limiter: limiter}.HandleDisconnect(context.Background(), 42)

	assert.Equal(t, []string{"leave", "forget"}, order)
	leave.AssertExpectations(t)
	limiter.AssertExpectations(t)
}

func TestMessageRouter(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		msgType string
		result  error
		wantErr error
		called  bool
	}{
		{name: "known type", msgType: messaging.MessageUserCreated, called: true},
		{name: "handler failure returned", msgType: messaging.MessageUserCreated, result: errBoom, wantErr: errBoom, called: true},
		{name: "unknown type ignored", msgType: "something.else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := new(MockMessageHandler)
			msg := &messaging.Message{ID: "m-1", Type: tt.msgType}
			if tt.called {
				h.On("Handle", msg).Return(tt.result).Once()
			}

			route := messageRouter(map[string]MessageHandler{messaging.MessageUserCreated: h})
			err := route(context.Background(), msg)

			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
			h.AssertExpectations(t)
		})
	}
}
