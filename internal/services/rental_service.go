package services

import (
	"context"
	"errors"
	"fmt"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type RentalService struct {
	Repo        *repositories.RentalRepository
	Ticket      models.TicketFormat
	DefaultDays int
}

func NewRentalService(repo *repositories.RentalRepository, ticket models.TicketFormat, defaultDays int) *RentalService {
	if defaultDays < 1 {
		defaultDays = 1
	}
	return &RentalService{Repo: repo, Ticket: ticket, DefaultDays: defaultDays}
}

// Book validates a checkout request and runs the booking transaction. The
// whole booking commits or nothing does.
func (s *RentalService) Book(ctx context.Context, req *models.BookingRequest) (*models.BookingResult, error) {
	if len(req.DeviceIDs) == 0 {
		return nil, errors.New("at least one device must be selected")
	}
	if err := checkDuplicateDevices(req.DeviceIDs); err != nil {
		return nil, err
	}

	if req.CustomerID == nil && req.Customer == nil {
		return nil, errors.New("a customer is required: pass customer_id or customer")
	}
	if req.CustomerID != nil && req.Customer != nil {
		return nil, errors.New("pass either customer_id or customer, not both")
	}
	if req.Customer != nil {
		if err := validateCustomerFields(req.Customer.Name, req.Customer.Email); err != nil {
			return nil, err
		}
	}

	req.RentalDays = s.rentalDays(req.RentalDays)
	if !req.PaymentMode.Valid() {
		return nil, fmt.Errorf("unknown payment mode %q", req.PaymentMode)
	}

	return s.Repo.CreateBooking(ctx, req, s.Ticket)
}

// rentalDays coerces a non-positive day count to the configured default,
// which the constructor keeps at one or more
func (s *RentalService) rentalDays(requested int) int {
	if requested <= 0 {
		return s.DefaultDays
	}
	return requested
}

// checkDuplicateDevices rejects a selection listing the same device twice.
// Duplicated association rows would skew the per-device allocation counts.
func checkDuplicateDevices(ids []int) error {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("device %d is listed more than once", id)
		}
		seen[id] = true
	}
	return nil
}

func (s *RentalService) GetRental(ctx context.Context, id int) (*models.RentalDetails, error) {
	return s.Repo.GetDetails(ctx, id)
}

func (s *RentalService) ListRentals(ctx context.Context) ([]*models.RentalDetails, error) {
	return s.Repo.ListDetails(ctx)
}
