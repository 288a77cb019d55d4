package service

import (
	"context"
	"log/slog"

	"github.com/mealio/food-order-service/internal/entities"
)

type FavoriteStore interface {
	ListFavorites(ctx context.Context, userID string) ([]entities.Food, error)
	AddFavorite(ctx context.Context, userID string, foodID int64) error
	RemoveFavorite(ctx context.Context, userID string, foodID int64) error
}

type favoriteService struct {
	logger    *slog.Logger
	favorites FavoriteStore
	foods     FoodGetter
}

func NewFavoriteService(logger *slog.Logger, favorites FavoriteStore, foods FoodGetter) *favoriteService {
	return &favoriteService{
		logger:    logger.With(slog.String("service", "favorites")),
		favorites: favorites,
		foods:     foods,
	}
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]entities.Food, error) {
	return s.favorites.ListFavorites(ctx, userID)
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID string, foodID int64) error {
	if _, err := s.foods.GetFoodByID(ctx, foodID); err != nil {
		return err
	}
	return s.favorites.AddFavorite(ctx, userID, foodID)
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID string, foodID int64) error {
	return s.favorites.RemoveFavorite(ctx, userID, foodID)
}
