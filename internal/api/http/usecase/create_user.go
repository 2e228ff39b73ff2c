package httpUsecase

import (
	"context"
)

type CreateUserUseCase interface {
	Execute(ctx context.Context, id int64, nickname string) error
}

type createUserUseCase struct {
	repository UserStore
}

func NewCreateUserUseCase(repository UserStore) CreateUserUseCase {
	return &createUserUseCase{
		repository: repository,
	}
}

func (u *createUserUseCase) Execute(ctx context.Context, id int64, nickname string) error {
	return u.repository.UpsertUser(ctx, id, nickname)
}
