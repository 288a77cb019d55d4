package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mealio/food-order-service/internal/entities"
)

var ErrInvalidFood = errors.New("invalid food")

type FoodRepo interface {
	ListFoods(ctx context.Context) ([]entities.Food, error)
	ListBestFoods(ctx context.Context) ([]entities.Food, error)
	ListByCategory(ctx context.Context, categoryID string) ([]entities.Food, error)
	GetFoodByID(ctx context.Context, id int64) (entities.Food, error)
	SaveFood(ctx context.Context, f entities.Food) (int64, error)
	UpdateFood(ctx context.Context, f entities.Food) error
	DeleteFood(ctx context.Context, id int64) error
}

type catalogService struct {
	logger *slog.Logger
	foods  FoodRepo
}

func NewCatalogService(logger *slog.Logger, foods FoodRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		foods:  foods,
	}
}

func (s *catalogService) ListFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foods.ListFoods(ctx)
}

func (s *catalogService) ListBestFoods(ctx context.Context) ([]entities.Food, error) {
	return s.foods.ListBestFoods(ctx)
}

func (s *catalogService) ListByCategory(ctx context.Context, categoryID string) ([]entities.Food, error) {
	return s.foods.ListByCategory(ctx, categoryID)
}

func (s *catalogService) GetFood(ctx context.Context, id int64) (entities.Food, error) {
	return s.foods.GetFoodByID(ctx, id)
}

func (s *catalogService) CreateFood(ctx context.Context, f entities.Food) (entities.Food, error) {
	if err := validateFood(f); err != nil {
		return entities.Food{}, err
	}

	id, err := s.foods.SaveFood(ctx, f)
	if err != nil {
		return entities.Food{}, err
	}
	f.ID = id

	s.logger.InfoContext(ctx, "food created", slog.Int64("food_id", id))
	return f, nil
}

func (s *catalogService) UpdateFood(ctx context.Context, f entities.Food) error {
	if err := validateFood(f); err != nil {
		return err
	}
	return s.foods.UpdateFood(ctx, f)
}

func (s *catalogService) DeleteFood(ctx context.Context, id int64) error {
	return s.foods.DeleteFood(ctx, id)
}

func validateFood(f entities.Food) error {
	if f.Title == "" || f.CategoryID == "" || f.Price.IsNegative() {
		return ErrInvalidFood
	}
	return nil
}
