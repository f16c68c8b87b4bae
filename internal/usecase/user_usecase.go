package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

// UserUseCase реализует бизнес-логику управления пользователями.
type UserUseCase struct {
	userRepo UserRepository
	logger   logger.Logger
}

func NewUserUC(userRepo UserRepository, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "UserUseCase.ListUsers"

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return users, nil
}

// CreateUser создаёт пользователя. Повторный email даёт e.ErrEmailTaken.
func (u *UserUseCase) CreateUser(ctx context.Context, req *CreateUserReq) (*domain.User, error) {
	const op = "UserUseCase.CreateUser"

	if req.Name == nil || req.Email == nil {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	user, err := u.userRepo.Create(ctx, domain.NewUser(*req.Name, *req.Email))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}
