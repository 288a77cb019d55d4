package repo

import (
	"context"
	"fmt"

	"github.com/mealio/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type favoritesRepo struct {
	queries
}

func NewFavoritesRepo(db *sqlx.DB) *favoritesRepo {
	return &favoritesRepo{queries: newQueries(db)}
}

func (r *favoritesRepo) ListFavorites(ctx context.Context, userID string) ([]entities.Food, error) {
	cols := make([]string, len(foodColumns))
	for i, c := range foodColumns {
		cols[i] = "f." + c
	}

	query, args := r.qb.Select(cols...).
		From("favorites fav").
		Join("foods f ON f.id = fav.food_id").
		Where(sq.Eq{"fav.user_id": userID}).
		OrderBy("fav.added_at DESC").
		MustSql()

	var rows []Food
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	out := make([]entities.Food, 0, len(rows))
	for _, f := range rows {
		out = append(out, FoodToEntity(f))
	}
	return out, nil
}

func (r *favoritesRepo) AddFavorite(ctx context.Context, userID string, foodID int64) error {
	query, args := r.qb.Insert("favorites").
		Columns("user_id", "food_id").
		Values(userID, foodID).
		Suffix("ON CONFLICT (user_id, food_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *favoritesRepo) RemoveFavorite(ctx context.Context, userID string, foodID int64) error {
	query, args := r.qb.Delete("favorites").
		Where(sq.Eq{"user_id": userID, "food_id": foodID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
