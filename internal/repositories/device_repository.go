package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolrental-backend/internal/models"
)

type DeviceRepository struct {
	DB *pgxpool.Pool
}

func NewDeviceRepository(db *pgxpool.Pool) *DeviceRepository {
	return &DeviceRepository{DB: db}
}

const deviceColumns = `d.id, d.device_name, d.device_type_id, COALESCE(t.type_name, ''),
	d.serial, d.price, d.rent_price, d.available, COALESCE(d.picture, ''),
	d.rent_count, COALESCE(d.notes, '')`

func scanDevice(row interface{ Scan(...any) error }) (*models.Device, error) {
	var d models.Device
	err := row.Scan(&d.ID, &d.DeviceName, &d.DeviceTypeID, &d.TypeName,
		&d.Serial, &d.Price, &d.RentPrice, &d.Available, &d.Picture,
		&d.RentCount, &d.Notes)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeviceRepository) Create(ctx context.Context, device *models.Device) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO devices (device_name, device_type_id, serial, price, rent_price, available, picture, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		device.DeviceName, device.DeviceTypeID, device.Serial, device.Price,
		device.RentPrice, device.Available, device.Picture, device.Notes,
	).Scan(&device.ID)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

func (r *DeviceRepository) Get(ctx context.Context, id int) (*models.Device, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+deviceColumns+`
		 FROM devices d LEFT JOIN device_types t ON d.device_type_id = t.id
		 WHERE d.id = $1`, id)
	return scanDevice(row)
}

func (r *DeviceRepository) List(ctx context.Context) ([]*models.Device, error) {
	return r.list(ctx, "")
}

// ListAvailable returns catalog devices that can be rented out
func (r *DeviceRepository) ListAvailable(ctx context.Context) ([]*models.Device, error) {
	return r.list(ctx, "WHERE d.available")
}

func (r *DeviceRepository) list(ctx context.Context, where string) ([]*models.Device, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+deviceColumns+`
		 FROM devices d LEFT JOIN device_types t ON d.device_type_id = t.id
		 `+where+` ORDER BY d.device_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*models.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

func (r *DeviceRepository) Update(ctx context.Context, device *models.Device) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE devices
		 SET device_name = $1, device_type_id = $2, serial = $3, price = $4,
		     rent_price = $5, available = $6, picture = $7, notes = $8
		 WHERE id = $9`,
		device.DeviceName, device.DeviceTypeID, device.Serial, device.Price,
		device.RentPrice, device.Available, device.Picture, device.Notes, device.ID)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("device %d not found", device.ID)
	}
	return nil
}

// IsReferenced reports whether any rental, service or ledger association
// still points at the device
func (r *DeviceRepository) IsReferenced(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM rental_devices WHERE device_id = $1)
		     OR EXISTS(SELECT 1 FROM service_devices WHERE device_id = $1)
		     OR EXISTS(SELECT 1 FROM financial_devices WHERE device_id = $1)`,
		id).Scan(&exists)
	return exists, err
}

func (r *DeviceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM devices WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("device %d not found", id)
	}
	return nil
}

// ListTypes returns the device type catalog
func (r *DeviceRepository) ListTypes(ctx context.Context) ([]models.DeviceType, error) {
	rows, err := r.DB.Query(ctx, "SELECT id, type_name FROM device_types ORDER BY type_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.DeviceType
	for rows.Next() {
		var t models.DeviceType
		if err := rows.Scan(&t.ID, &t.TypeName); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
