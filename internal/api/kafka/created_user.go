package kafkaHandler

import (
	"context"
	"fmt"

	"riddle-service/domain"
	httpUsecase "riddle-service/internal/api/http/usecase"
	"riddle-service/pkg/messaging"
)

type userCreatedData struct {
	UserID   int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type CreatedUserHandler struct {
	usecase httpUsecase.CreateUserUseCase
}

func NewCreatedUserHandler(createdUserUsecase httpUsecase.CreateUserUseCase) *CreatedUserHandler {
	return &CreatedUserHandler{
		usecase: createdUserUsecase,
	}
}

func (h *CreatedUserHandler) Handle(ctx context.Context, msg *messaging.Message) error {
	var data userCreatedData
	if err := msg.Decode(&data); err != nil {
		return fmt.Errorf("%w: user.created payload: %v", domain.ErrInvalidInput, err)
	}
	return h.usecase.Execute(ctx, data.UserID, data.Nickname)
}
