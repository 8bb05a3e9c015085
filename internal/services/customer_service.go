package services

import (
	"context"
	"errors"
	"strings"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

// validEmail is the checkout-form rule: an address with an '@' and a dot
func validEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func validateCustomerFields(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}
	if !validEmail(email) {
		return errors.New("email address is not valid")
	}
	return nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if err := validateCustomerFields(req.Name, req.Email); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:     strings.TrimSpace(req.Name),
		Zipcode:  strings.TrimSpace(req.Zipcode),
		City:     strings.TrimSpace(req.City),
		Address:  strings.TrimSpace(req.Address),
		Email:    strings.TrimSpace(req.Email),
		IDNumber: strings.TrimSpace(req.IDNumber),
		Comment:  strings.TrimSpace(req.Comment),
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) SearchCustomers(ctx context.Context, term string) ([]*models.Customer, error) {
	if strings.TrimSpace(term) == "" {
		return s.Repo.List(ctx)
	}
	return s.Repo.Search(ctx, term)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if err := validateCustomerFields(req.Name, req.Email); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:       id,
		Name:     strings.TrimSpace(req.Name),
		Zipcode:  strings.TrimSpace(req.Zipcode),
		City:     strings.TrimSpace(req.City),
		Address:  strings.TrimSpace(req.Address),
		Email:    strings.TrimSpace(req.Email),
		IDNumber: strings.TrimSpace(req.IDNumber),
		Comment:  strings.TrimSpace(req.Comment),
	}

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// DeleteCustomer refuses while any rental still references the customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	hasRentals, err := s.Repo.HasRentals(ctx, id)
	if err != nil {
		return err
	}
	if hasRentals {
		return ErrCustomerHasRentals
	}
	return s.Repo.Delete(ctx, id)
}
