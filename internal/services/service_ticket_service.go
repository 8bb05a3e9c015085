package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type ServiceTicketService struct {
	Repo              *repositories.ServiceRepository
	Ticket            models.TicketFormat
	DefaultTechnician string
}

func NewServiceTicketService(repo *repositories.ServiceRepository, ticket models.TicketFormat, defaultTechnician string) *ServiceTicketService {
	return &ServiceTicketService{Repo: repo, Ticket: ticket, DefaultTechnician: defaultTechnician}
}

// CreateTicket opens a service ticket and books its cost as an expense ledger
// entry in the same transaction
func (s *ServiceTicketService) CreateTicket(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error) {
	if strings.TrimSpace(req.ServiceType) == "" {
		return nil, errors.New("service type is required")
	}
	if len(req.DeviceIDs) == 0 {
		return nil, errors.New("at least one device must be selected")
	}
	if err := checkDuplicateDevices(req.DeviceIDs); err != nil {
		return nil, err
	}
	if req.CostAmount < 0 {
		return nil, errors.New("cost amount must not be negative")
	}

	technician := strings.TrimSpace(req.Technician)
	if technician == "" {
		technician = s.DefaultTechnician
	}
	serviceDate := req.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = time.Now()
	}

	svc := &models.Service{
		ServiceType: strings.TrimSpace(req.ServiceType),
		Description: strings.TrimSpace(req.Description),
		Technician:  technician,
		ServiceDate: serviceDate,
		CostAmount:  req.CostAmount,
	}
	if err := s.Repo.CreateWithFinancial(ctx, svc, req.DeviceIDs, s.Ticket); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *ServiceTicketService) GetTicket(ctx context.Context, id int) (*models.Service, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ServiceTicketService) ListTickets(ctx context.Context) ([]*models.ServiceDetails, error) {
	return s.Repo.ListDetails(ctx)
}

// DeleteTicket removes the ticket together with its expense ledger entry
func (s *ServiceTicketService) DeleteTicket(ctx context.Context, id int) error {
	return s.Repo.DeleteWithFinancial(ctx, id)
}
