package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/mealio/food-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type statsRepo struct {
	queries
}

func NewStatsRepo(db *sqlx.DB) *statsRepo {
	return &statsRepo{queries: newQueries(db)}
}

type revenueRow struct {
	Bucket  time.Time       `db:"bucket"`
	Revenue decimal.Decimal `db:"revenue"`
	Orders  int             `db:"orders"`
}

type RevenueBucket struct {
	Bucket  time.Time
	Revenue decimal.Decimal
	Orders  int
}

// RevenueBuckets aggregates completed orders into date_trunc buckets.
// granularity is a postgres date_trunc field: day, month or year. It is
// interpolated into the query text, so anything else is rejected here.
func (r *statsRepo) RevenueBuckets(ctx context.Context, from, to time.Time, granularity string) ([]RevenueBucket, error) {
	switch granularity {
	case "day", "month", "year":
	default:
		return nil, fmt.Errorf("unsupported revenue granularity %q", granularity)
	}

	query, args, err := r.qb.Select(
		fmt.Sprintf("date_trunc('%s', created_at) AS bucket", granularity),
		"COALESCE(SUM(total_price), 0) AS revenue",
		"COUNT(*) AS orders").
		From("orders").
		Where(sq.Eq{"status": string(entities.StatusCompleted)}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.LtOrEq{"created_at": to}).
		GroupBy("bucket").
		OrderBy("bucket").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue query: %w", err)
	}

	var rows []revenueRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select revenue: %w", err)
	}

	out := make([]RevenueBucket, 0, len(rows))
	for _, row := range rows {
		out = append(out, RevenueBucket(row))
	}
	return out, nil
}
