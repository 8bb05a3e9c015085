package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	t.Run("covers exactly one month", func(t *testing.T) {
		from, to := monthWindow(2025, 6)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		from, to := monthWindow(2025, 12)
		assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
		assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)
	})
}

func TestYearWindow(t *testing.T) {
	from, to := yearWindow(2024)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestRangeBounds(t *testing.T) {
	// an entry dated on the last requested day falls inside the bounds
	from, bound := rangeBounds(
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), bound)

	lastDayEntry := time.Date(2025, time.June, 30, 15, 4, 5, 0, time.UTC)
	assert.True(t, !lastDayEntry.Before(from) && lastDayEntry.Before(bound))
}
