package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mealio/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var foodColumns = []string{
	"id", "category_id", "title", "description", "image_path",
	"price", "star", "time_value", "calorie", "best_food",
}

type foodsRepo struct {
	queries
}

func NewFoodsRepo(db *sqlx.DB) *foodsRepo {
	return &foodsRepo{queries: newQueries(db)}
}

func (r *foodsRepo) ListFoods(ctx context.Context) ([]entities.Food, error) {
	query, args := r.qb.Select(foodColumns...).From("foods").OrderBy("title").MustSql()
	return r.list(ctx, query, args)
}

func (r *foodsRepo) ListBestFoods(ctx context.Context) ([]entities.Food, error) {
	query, args := r.qb.Select(foodColumns...).
		From("foods").
		Where(sq.Eq{"best_food": true}).
		OrderBy("star DESC").
		MustSql()
	return r.list(ctx, query, args)
}

func (r *foodsRepo) ListByCategory(ctx context.Context, categoryID string) ([]entities.Food, error) {
	query, args := r.qb.Select(foodColumns...).
		From("foods").
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("title").
		MustSql()
	return r.list(ctx, query, args)
}

func (r *foodsRepo) list(ctx context.Context, query string, args []any) ([]entities.Food, error) {
	var rows []Food
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select foods: %w", err)
	}
	out := make([]entities.Food, 0, len(rows))
	for _, f := range rows {
		out = append(out, FoodToEntity(f))
	}
	return out, nil
}

func (r *foodsRepo) GetFoodByID(ctx context.Context, id int64) (entities.Food, error) {
	query, args := r.qb.Select(foodColumns...).
		From("foods").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Food
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Food{}, entities.ErrFoodNotFound
	}
	if err != nil {
		return entities.Food{}, fmt.Errorf("failed to get food: %w", err)
	}
	return FoodToEntity(row), nil
}

func (r *foodsRepo) SaveFood(ctx context.Context, f entities.Food) (int64, error) {
	query, args := r.qb.Insert("foods").
		Columns("category_id", "title", "description", "image_path",
			"price", "star", "time_value", "calorie", "best_food").
		Values(f.CategoryID, f.Title, nullString(f.Description), nullString(f.ImagePath),
			f.Price, f.Star, f.TimeValue, f.Calorie, f.BestFood).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save food: %w", err)
	}
	return id, nil
}

func (r *foodsRepo) UpdateFood(ctx context.Context, f entities.Food) error {
	query, args := r.qb.Update("foods").
		Set("category_id", f.CategoryID).
		Set("title", f.Title).
		Set("description", nullString(f.Description)).
		Set("image_path", nullString(f.ImagePath)).
		Set("price", f.Price).
		Set("star", f.Star).
		Set("time_value", f.TimeValue).
		Set("calorie", f.Calorie).
		Set("best_food", f.BestFood).
		Where(sq.Eq{"id": f.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update food: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrFoodNotFound
	}
	return nil
}

func (r *foodsRepo) DeleteFood(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("foods").Where(sq.Eq{"id": id}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrFoodNotFound
	}
	return nil
}
