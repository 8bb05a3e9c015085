package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketFormatNext(t *testing.T) {
	rnt := TicketFormat{Prefix: "RNT", Width: 4}

	t.Run("continues after the highest number", func(t *testing.T) {
		next := rnt.Next([]string{"RNT0001", "RNT0042", "RNT0007"})
		assert.Equal(t, "RNT0043", next)
	})

	t.Run("starts at one with no existing numbers", func(t *testing.T) {
		assert.Equal(t, "RNT0001", rnt.Next(nil))
		assert.Equal(t, "RNT0001", rnt.Next([]string{}))
	})

	t.Run("ignores other prefixes", func(t *testing.T) {
		next := rnt.Next([]string{"SRV0099", "RNT0002"})
		assert.Equal(t, "RNT0003", next)
	})

	t.Run("ignores non-numeric suffixes", func(t *testing.T) {
		next := rnt.Next([]string{"RNTabc", "RNT-12", "RNT0005"})
		assert.Equal(t, "RNT0006", next)
	})

	t.Run("grows past the padded width", func(t *testing.T) {
		next := rnt.Next([]string{"RNT9999"})
		assert.Equal(t, "RNT10000", next)
	})

	t.Run("service prefix numbers independently", func(t *testing.T) {
		srv := TicketFormat{Prefix: "SRV", Width: 4}
		next := srv.Next([]string{"RNT0042"})
		assert.Equal(t, "SRV0001", next)
	})
}
