package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	// Friday, mid-month, mid-year.
	now := time.Date(2024, time.June, 14, 15, 30, 0, 0, time.UTC)

	t.Run("daily covers the last 7 days", func(t *testing.T) {
		from, to, err := periodRange(now, PeriodDaily)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, now, to)
	})

	t.Run("monthly covers the last 6 calendar months", func(t *testing.T) {
		from, to, err := periodRange(now, PeriodMonthly)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, now, to)
	})

	t.Run("yearly covers the current year", func(t *testing.T) {
		from, to, err := periodRange(now, PeriodYearly)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, 2024, to.Year())
		assert.Equal(t, time.December, to.Month())
		assert.Equal(t, 31, to.Day())
	})

	t.Run("unknown period", func(t *testing.T) {
		_, _, err := periodRange(now, "quarter")
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("monthly across a year boundary", func(t *testing.T) {
		feb := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
		from, _, err := periodRange(feb, PeriodMonthly)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), from)
	})
}
