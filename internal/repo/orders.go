package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mealio/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ordersRepo struct {
	queries
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{queries: newQueries(db)}
}

func (r *ordersRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("id", "user_id", "address_id", "total_price", "status", "payment_method", "created_at").
		Values(o.ID, o.UserID, o.AddressID, o.TotalPrice, string(o.Status), string(o.PaymentMethod), o.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// SaveLines writes all lines of an order with a single statement. The lines
// of an order have no ordering dependency on each other, so they go out as
// one batch.
func (r *ordersRepo) SaveLines(ctx context.Context, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").
		Columns("id", "order_id", "food_id", "unit_price", "quantity").
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, l := range lines {
		q = q.Values(l.ID, l.OrderID, l.FoodID, l.UnitPrice, l.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order lines: %w", err)
	}
	return nil
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "user_id", "address_id", "total_price",
		"status", "payment_method", "created_at", "cancelled_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.linesByOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, lines), nil
}

func (r *ordersRepo) linesByOrder(ctx context.Context, orderID string) ([]OrderLine, error) {
	query, args := r.qb.Select("id", "order_id", "food_id", "unit_price", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order lines: %w", err)
	}
	return lines, nil
}

func (r *ordersRepo) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "user_id", "address_id", "total_price",
		"status", "payment_method", "created_at", "cancelled_at").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	return r.listWithLines(ctx, query, args)
}

func (r *ordersRepo) ListByStatus(ctx context.Context, status entities.OrderStatus, limit int) ([]entities.Order, error) {
	q := r.qb.Select(
		"id", "user_id", "address_id", "total_price",
		"status", "payment_method", "created_at", "cancelled_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}

	query, args := q.MustSql()
	return r.listWithLines(ctx, query, args)
}

func (r *ordersRepo) listWithLines(ctx context.Context, query string, args []any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	lq, largs := r.qb.Select("id", "order_id", "food_id", "unit_price", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": ids}).
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, lq, largs...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}
	byOrder := make(map[string][]OrderLine, len(orders))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, byOrder[o.ID]))
	}
	return result, nil
}

func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) error {
	q := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": orderID})
	if status == entities.StatusCancelled {
		q = q.Set("cancelled_at", at)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// LatestOrders feeds the cache warm-up on start.
func (r *ordersRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(
		"id", "user_id", "address_id", "total_price",
		"status", "payment_method", "created_at", "cancelled_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	return r.listWithLines(ctx, query, args)
}
