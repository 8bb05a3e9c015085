package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type FinancialService struct {
	Repo *repositories.FinancialRepository
}

func NewFinancialService(repo *repositories.FinancialRepository) *FinancialService {
	return &FinancialService{Repo: repo}
}

// CreateEntry records a manual ledger entry. Rental and service entries are
// written by their own transactions, so SourceID is always null here.
func (s *FinancialService) CreateEntry(ctx context.Context, req *models.CreateFinancialRequest) (*models.Financial, error) {
	if !req.EntryType.Valid() {
		return nil, fmt.Errorf("unknown entry type %q", req.EntryType)
	}
	if !req.SourceType.Valid() {
		return nil, fmt.Errorf("unknown source type %q", req.SourceType)
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, errors.New("comment is required")
	}
	if req.Date.IsZero() {
		return nil, errors.New("date is required")
	}
	if err := checkDuplicateDevices(req.DeviceIDs); err != nil {
		return nil, err
	}

	entry := &models.Financial{
		TicketNr:   strings.TrimSpace(req.TicketNr),
		EntryType:  req.EntryType,
		SourceType: req.SourceType,
		SourceID:   nil,
		Date:       req.Date,
		Comment:    strings.TrimSpace(req.Comment),
		Amount:     req.Amount,
	}
	if err := s.Repo.Create(ctx, entry, req.DeviceIDs); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FinancialService) GetEntry(ctx context.Context, id int) (*models.Financial, error) {
	return s.Repo.Get(ctx, id)
}

func (s *FinancialService) ListEntries(ctx context.Context, filter *models.FinancialFilter) ([]models.Financial, error) {
	if filter.EntryType != "" && !filter.EntryType.Valid() {
		return nil, fmt.Errorf("unknown entry type %q", filter.EntryType)
	}
	if filter.SourceType != "" && !filter.SourceType.Valid() {
		return nil, fmt.Errorf("unknown source type %q", filter.SourceType)
	}
	return s.Repo.List(ctx, filter)
}

// DeleteEntry removes a manual ledger entry. Entries a rental or service
// ticket wrote stay consistent with their source and are rejected here;
// deleting the service ticket removes its entry with it.
func (s *FinancialService) DeleteEntry(ctx context.Context, id int) error {
	entry, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if entrySourced(entry) {
		return ErrEntrySourced
	}
	return s.Repo.Delete(ctx, id)
}

func entrySourced(entry *models.Financial) bool {
	if entry.SourceID == nil {
		return false
	}
	return entry.SourceType == models.SourceTypeRental || entry.SourceType == models.SourceTypeService
}
