package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolrental-backend/internal/models"
)

func TestValidateCustomerFields(t *testing.T) {
	assert.NoError(t, validateCustomerFields("Kovacs Anna", "anna@example.com"))
	assert.Error(t, validateCustomerFields("", "anna@example.com"))
	assert.Error(t, validateCustomerFields("Kovacs Anna", ""))
	assert.Error(t, validateCustomerFields("Kovacs Anna", "not-an-email"))
	assert.Error(t, validateCustomerFields("Kovacs Anna", "missing-dot@localhost"))
}

func TestBookingValidation(t *testing.T) {
	svc := NewRentalService(nil, models.TicketFormat{Prefix: "RNT", Width: 4}, 1)
	customerID := 7

	base := func() *models.BookingRequest {
		return &models.BookingRequest{
			CustomerID:  &customerID,
			DeviceIDs:   []int{1, 2},
			RentalDays:  2,
			PaymentMode: models.PaymentModeCash,
		}
	}

	t.Run("rejects empty device selection", func(t *testing.T) {
		req := base()
		req.DeviceIDs = nil
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate devices", func(t *testing.T) {
		req := base()
		req.DeviceIDs = []int{3, 3}
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects missing customer", func(t *testing.T) {
		req := base()
		req.CustomerID = nil
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects both customer forms at once", func(t *testing.T) {
		req := base()
		req.Customer = &models.CreateCustomerRequest{Name: "X", Email: "x@y.z"}
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects invalid new customer", func(t *testing.T) {
		req := base()
		req.CustomerID = nil
		req.Customer = &models.CreateCustomerRequest{Name: "", Email: "x@y.z"}
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment mode", func(t *testing.T) {
		req := base()
		req.PaymentMode = "barter"
		_, err := svc.Book(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestRentalDaysCoercion(t *testing.T) {
	svc := NewRentalService(nil, models.TicketFormat{Prefix: "RNT", Width: 4}, 3)
	assert.Equal(t, 3, svc.rentalDays(0))
	assert.Equal(t, 3, svc.rentalDays(-2))
	assert.Equal(t, 5, svc.rentalDays(5))

	// a default below one is floored at one day
	floored := NewRentalService(nil, models.TicketFormat{Prefix: "RNT", Width: 4}, 0)
	assert.Equal(t, 1, floored.rentalDays(0))
}

func TestManualEntryValidation(t *testing.T) {
	svc := NewFinancialService(nil)

	base := func() *models.CreateFinancialRequest {
		return &models.CreateFinancialRequest{
			EntryType:  models.EntryTypeExpense,
			SourceType: models.SourceTypeMarketing,
			Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			Comment:    "Flyer print run",
			Amount:     120,
		}
	}

	cases := []struct {
		name   string
		mutate func(*models.CreateFinancialRequest)
	}{
		{"zero amount", func(r *models.CreateFinancialRequest) { r.Amount = 0 }},
		{"negative amount", func(r *models.CreateFinancialRequest) { r.Amount = -5 }},
		{"empty comment", func(r *models.CreateFinancialRequest) { r.Comment = "  " }},
		{"zero date", func(r *models.CreateFinancialRequest) { r.Date = time.Time{} }},
		{"unknown entry type", func(r *models.CreateFinancialRequest) { r.EntryType = "transfer" }},
		{"unknown source type", func(r *models.CreateFinancialRequest) { r.SourceType = "lottery" }},
		// a duplicated device would be double-counted by the equal split
		{"duplicate devices", func(r *models.CreateFinancialRequest) { r.DeviceIDs = []int{4, 4, 9} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(req)
			_, err := svc.CreateEntry(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestEntrySourced(t *testing.T) {
	rentalID := 12

	sourced := &models.Financial{SourceType: models.SourceTypeRental, SourceID: &rentalID}
	require.True(t, entrySourced(sourced))

	sourced.SourceType = models.SourceTypeService
	require.True(t, entrySourced(sourced))

	// a manual entry categorized as rental has no source row behind it
	manual := &models.Financial{SourceType: models.SourceTypeRental, SourceID: nil}
	assert.False(t, entrySourced(manual))

	other := &models.Financial{SourceType: models.SourceTypeMarketing, SourceID: &rentalID}
	assert.False(t, entrySourced(other))
}

func TestServiceTicketValidation(t *testing.T) {
	svc := NewServiceTicketService(nil, models.TicketFormat{Prefix: "SRV", Width: 4}, "Andras")

	t.Run("rejects empty service type", func(t *testing.T) {
		_, err := svc.CreateTicket(context.Background(), &models.CreateServiceRequest{
			DeviceIDs: []int{1},
		})
		assert.Error(t, err)
	})

	t.Run("rejects empty device selection", func(t *testing.T) {
		_, err := svc.CreateTicket(context.Background(), &models.CreateServiceRequest{
			ServiceType: "brake adjustment",
		})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate devices", func(t *testing.T) {
		_, err := svc.CreateTicket(context.Background(), &models.CreateServiceRequest{
			ServiceType: "brake adjustment",
			DeviceIDs:   []int{2, 2},
		})
		assert.Error(t, err)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		_, err := svc.CreateTicket(context.Background(), &models.CreateServiceRequest{
			ServiceType: "brake adjustment",
			DeviceIDs:   []int{1},
			CostAmount:  -1,
		})
		assert.Error(t, err)
	})
}
