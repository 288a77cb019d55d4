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

type usersRepo struct {
	queries
}

func NewUsersRepo(db *sqlx.DB) *usersRepo {
	return &usersRepo{queries: newQueries(db)}
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	query, args := r.qb.Select("id", "email", "name", "phone", "image", "birthday", "role").
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row User
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	query, args := r.qb.Select("id", "email", "name", "phone", "image", "birthday", "role").
		From("users").
		OrderBy("name").
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	out := make([]entities.User, 0, len(rows))
	for _, u := range rows {
		out = append(out, UserToEntity(u))
	}
	return out, nil
}

// UpdateProfile upserts the identity-provider record with profile fields the
// user owns. The id and email come from the identity service and stay as is.
func (r *usersRepo) UpdateProfile(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns("id", "email", "name", "phone", "image", "birthday", "role").
		Values(u.ID, u.Email, u.Name, nullString(u.Phone), nullString(u.Image),
			nullString(u.Birthday), string(u.Role)).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			image = EXCLUDED.image,
			birthday = EXCLUDED.birthday`).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
