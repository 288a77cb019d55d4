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

type addressesRepo struct {
	queries
}

func NewAddressesRepo(db *sqlx.DB) *addressesRepo {
	return &addressesRepo{queries: newQueries(db)}
}

func (r *addressesRepo) ListByUser(ctx context.Context, userID string) ([]entities.Address, error) {
	query, args := r.qb.Select(
		"id", "user_id", "recipient_name", "street", "locality",
		"district", "city", "region", "country", "postal_code", "category").
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("recipient_name").
		MustSql()

	var rows []Address
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	out := make([]entities.Address, 0, len(rows))
	for _, a := range rows {
		out = append(out, AddressToEntity(a))
	}
	return out, nil
}

func (r *addressesRepo) GetByID(ctx context.Context, id string) (entities.Address, error) {
	query, args := r.qb.Select(
		"id", "user_id", "recipient_name", "street", "locality",
		"district", "city", "region", "country", "postal_code", "category").
		From("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Address
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(row), nil
}

func (r *addressesRepo) SaveAddress(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Insert("addresses").
		Columns("id", "user_id", "recipient_name", "street", "locality",
			"district", "city", "region", "country", "postal_code", "category").
		Values(a.ID, a.UserID, a.RecipientName, a.Street, nullString(a.Locality),
			nullString(a.District), a.City, nullString(a.Region), a.Country,
			nullString(a.PostalCode), string(a.Category)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}
	return nil
}
