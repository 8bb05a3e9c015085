package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotal(t *testing.T) {
	t.Run("sums daily prices over the rental days", func(t *testing.T) {
		assert.InDelta(t, 12000, BookingTotal([]float64{1500, 2500}, 3), 1e-9)
	})

	t.Run("single device single day", func(t *testing.T) {
		assert.InDelta(t, 100, BookingTotal([]float64{100}, 1), 1e-9)
	})

	t.Run("no devices costs nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, BookingTotal(nil, 5))
	})
}
