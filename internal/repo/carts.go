package repo

import (
	"context"
	"fmt"

	"github.com/mealio/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartsRepo struct {
	queries
}

func NewCartsRepo(db *sqlx.DB) *cartsRepo {
	return &cartsRepo{queries: newQueries(db)}
}

// ListCart returns the user's pending lines priced at the current catalog
// price. Prices freeze only at order submission.
func (r *cartsRepo) ListCart(ctx context.Context, userID string) (entities.Cart, error) {
	query, args := r.qb.Select("ci.food_id", "f.title", "f.image_path", "f.price", "ci.quantity").
		From("cart_items ci").
		Join("foods f ON f.id = ci.food_id").
		Where(sq.Eq{"ci.user_id": userID}).
		OrderBy("ci.added_at").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart: %w", err)
	}

	cart := make(entities.Cart, 0, len(lines))
	for _, l := range lines {
		cart = append(cart, CartLineToEntity(l))
	}
	return cart, nil
}

func (r *cartsRepo) UpsertItem(ctx context.Context, userID string, foodID int64, quantity int) error {
	query, args := r.qb.Insert("cart_items").
		Columns("user_id", "food_id", "quantity").
		Values(userID, foodID, quantity).
		Suffix("ON CONFLICT (user_id, food_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *cartsRepo) SetQuantity(ctx context.Context, userID string, foodID int64, quantity int) error {
	if quantity <= 0 {
		return r.RemoveItem(ctx, userID, foodID)
	}

	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"user_id": userID, "food_id": foodID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

func (r *cartsRepo) RemoveItem(ctx context.Context, userID string, foodID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "food_id": foodID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (r *cartsRepo) ClearCart(ctx context.Context, userID string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
