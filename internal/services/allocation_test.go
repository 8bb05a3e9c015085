package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualShare(t *testing.T) {
	t.Run("splits evenly", func(t *testing.T) {
		assert.Equal(t, 250.0, EqualShare(1000, 4))
	})

	t.Run("no devices contributes nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, EqualShare(1000, 0))
		assert.Equal(t, 0.0, EqualShare(1000, -1))
	})

	t.Run("shares sum back to the amount", func(t *testing.T) {
		total := 0.0
		for i := 0; i < 3; i++ {
			total += EqualShare(999, 3)
		}
		assert.InDelta(t, 999, total, 1e-9)
	})
}

func TestRentalShare(t *testing.T) {
	t.Run("splits by listed price", func(t *testing.T) {
		// two devices at 3000 and 5000 per day share a 7200 entry
		assert.InDelta(t, 2700, RentalShare(7200, 3, 3000, 8000), 1e-9)
		assert.InDelta(t, 4500, RentalShare(7200, 3, 5000, 8000), 1e-9)
	})

	t.Run("shares sum back to the entry amount", func(t *testing.T) {
		sum := RentalShare(7200, 3, 3000, 8000) + RentalShare(7200, 3, 5000, 8000)
		assert.InDelta(t, 7200, sum, 1e-9)
	})

	t.Run("discount is redistributed proportionally", func(t *testing.T) {
		// entry discounted below nominal, ratios hold
		share := RentalShare(4000, 2, 1000, 4000)
		assert.InDelta(t, 1000, share, 1e-9)
	})

	t.Run("zero nominal falls back to listed price", func(t *testing.T) {
		assert.InDelta(t, 300, RentalShare(1000, 2, 150, 0), 1e-9)
	})
}
