package service

import (
	"context"
	"log/slog"

	"github.com/mealio/food-order-service/internal/entities"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateProfile(ctx context.Context, u entities.User) error
}

type userService struct {
	logger *slog.Logger
	users  UserRepo
}

func NewUserService(logger *slog.Logger, users UserRepo) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		users:  users,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (entities.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, u entities.User) error {
	if u.Role == "" {
		u.Role = entities.RoleCustomer
	}
	return s.users.UpdateProfile(ctx, u)
}

func (s *userService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.ListUsers(ctx)
}
