package services

import (
	"context"
	"errors"
	"strings"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/repositories"
)

type DeviceService struct {
	Repo *repositories.DeviceRepository
}

func NewDeviceService(repo *repositories.DeviceRepository) *DeviceService {
	return &DeviceService{Repo: repo}
}

func validateDeviceFields(name string, rentPrice float64) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("device name is required")
	}
	if rentPrice < 0 {
		return errors.New("rent price must not be negative")
	}
	return nil
}

func (s *DeviceService) CreateDevice(ctx context.Context, req *models.CreateDeviceRequest) (*models.Device, error) {
	if err := validateDeviceFields(req.DeviceName, req.RentPrice); err != nil {
		return nil, err
	}

	device := &models.Device{
		DeviceName:   strings.TrimSpace(req.DeviceName),
		DeviceTypeID: req.DeviceTypeID,
		Serial:       strings.TrimSpace(req.Serial),
		Price:        req.Price,
		RentPrice:    req.RentPrice,
		Available:    req.Available,
		Picture:      req.Picture,
		Notes:        req.Notes,
	}

	if err := s.Repo.Create(ctx, device); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, device.ID)
}

func (s *DeviceService) GetDevice(ctx context.Context, id int) (*models.Device, error) {
	return s.Repo.Get(ctx, id)
}

func (s *DeviceService) ListDevices(ctx context.Context) ([]*models.Device, error) {
	return s.Repo.List(ctx)
}

func (s *DeviceService) ListAvailableDevices(ctx context.Context) ([]*models.Device, error) {
	return s.Repo.ListAvailable(ctx)
}

// UpdateDevice edits catalog fields. The rent counter is not touched here:
// only the booking transaction moves it.
func (s *DeviceService) UpdateDevice(ctx context.Context, id int, req *models.UpdateDeviceRequest) (*models.Device, error) {
	if err := validateDeviceFields(req.DeviceName, req.RentPrice); err != nil {
		return nil, err
	}

	device := &models.Device{
		ID:           id,
		DeviceName:   strings.TrimSpace(req.DeviceName),
		DeviceTypeID: req.DeviceTypeID,
		Serial:       strings.TrimSpace(req.Serial),
		Price:        req.Price,
		RentPrice:    req.RentPrice,
		Available:    req.Available,
		Picture:      req.Picture,
		Notes:        req.Notes,
	}

	if err := s.Repo.Update(ctx, device); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// DeleteDevice refuses while any rental, service ticket or ledger entry
// still references the device
func (s *DeviceService) DeleteDevice(ctx context.Context, id int) error {
	referenced, err := s.Repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrDeviceInUse
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DeviceService) ListDeviceTypes(ctx context.Context) ([]models.DeviceType, error) {
	return s.Repo.ListTypes(ctx)
}
