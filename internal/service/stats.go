package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mealio/food-order-service/internal/repo"
)

var ErrInvalidPeriod = errors.New("invalid statistics period")

const (
	PeriodDaily   = "day"
	PeriodMonthly = "month"
	PeriodYearly  = "year"
)

type StatsRepo interface {
	RevenueBuckets(ctx context.Context, from, to time.Time, granularity string) ([]repo.RevenueBucket, error)
}

type statsService struct {
	logger *slog.Logger
	stats  StatsRepo
	now    func() time.Time
}

func NewStatsService(logger *slog.Logger, stats StatsRepo) *statsService {
	return &statsService{
		logger: logger.With(slog.String("service", "stats")),
		stats:  stats,
		now:    time.Now,
	}
}

// Revenue reports completed-order revenue bucketed per the requested period:
// the last 7 days, the last 6 calendar months, or the current year.
func (s *statsService) Revenue(ctx context.Context, period string) ([]repo.RevenueBucket, error) {
	from, to, err := periodRange(s.now(), period)
	if err != nil {
		return nil, err
	}
	return s.stats.RevenueBuckets(ctx, from, to, period)
}

func periodRange(now time.Time, period string) (time.Time, time.Time, error) {
	switch period {
	case PeriodDaily:
		start := now.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
		return start, now, nil
	case PeriodMonthly:
		start := now.AddDate(0, -5, 0)
		start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, now, nil
	case PeriodYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())
		return start, end, nil
	}
	return time.Time{}, time.Time{}, ErrInvalidPeriod
}
