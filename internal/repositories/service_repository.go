package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolrental-backend/internal/models"
)

type ServiceRepository struct {
	DB *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

// CreateWithFinancial persists a service ticket together with its device
// associations and the matching expense ledger entry, in one transaction.
// The ticket number is generated inside the transaction.
func (r *ServiceRepository) CreateWithFinancial(ctx context.Context, svc *models.Service, deviceIDs []int, ticket models.TicketFormat) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	existing, err := ticketNumbers(ctx, tx, "services", ticket.Prefix)
	if err != nil {
		return fmt.Errorf("failed to create service ticket: %w", err)
	}
	svc.TicketNr = ticket.Next(existing)

	if err := tx.QueryRow(ctx,
		`INSERT INTO services (ticket_nr, service_type, description, technician, service_date, cost_amount)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		svc.TicketNr, svc.ServiceType, svc.Description, svc.Technician,
		svc.ServiceDate, svc.CostAmount,
	).Scan(&svc.ID); err != nil {
		return fmt.Errorf("failed to create service ticket: %w", err)
	}

	for _, deviceID := range deviceIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO service_devices (service_id, device_id) VALUES ($1, $2)",
			svc.ID, deviceID); err != nil {
			return fmt.Errorf("failed to create service ticket: %w", err)
		}
	}

	// The expense side of the ticket: one ledger entry, shared by the
	// serviced devices
	var financialID int
	if err := tx.QueryRow(ctx,
		`INSERT INTO financials (ticket_nr, entry_type, source_type, source_id, date, comment, amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		svc.TicketNr, models.EntryTypeExpense, models.SourceTypeService, svc.ID,
		svc.ServiceDate, fmt.Sprintf("Service cost - %s", svc.TicketNr), svc.CostAmount,
	).Scan(&financialID); err != nil {
		return fmt.Errorf("failed to create service ticket: %w", err)
	}

	for _, deviceID := range deviceIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO financial_devices (financial_id, device_id) VALUES ($1, $2)",
			financialID, deviceID); err != nil {
			return fmt.Errorf("failed to create service ticket: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *ServiceRepository) Get(ctx context.Context, id int) (*models.Service, error) {
	var s models.Service
	err := r.DB.QueryRow(ctx,
		`SELECT id, ticket_nr, service_type, description, technician, service_date, cost_amount
		 FROM services WHERE id = $1`, id,
	).Scan(&s.ID, &s.TicketNr, &s.ServiceType, &s.Description, &s.Technician,
		&s.ServiceDate, &s.CostAmount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListDetails returns all service tickets, newest first, with their devices
func (r *ServiceRepository) ListDetails(ctx context.Context) ([]*models.ServiceDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, ticket_nr, service_type, description, technician, service_date, cost_amount
		 FROM services ORDER BY service_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.ServiceDetails
	for rows.Next() {
		var d models.ServiceDetails
		if err := rows.Scan(&d.ID, &d.TicketNr, &d.ServiceType, &d.Description,
			&d.Technician, &d.ServiceDate, &d.CostAmount); err != nil {
			return nil, err
		}
		services = append(services, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, svc := range services {
		devices, err := r.devicesOf(ctx, svc.ID)
		if err != nil {
			return nil, err
		}
		svc.Devices = devices
	}
	return services, nil
}

func (r *ServiceRepository) devicesOf(ctx context.Context, serviceID int) ([]models.Device, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+deviceColumns+`
		 FROM service_devices sd
		 JOIN devices d ON sd.device_id = d.id
		 LEFT JOIN device_types t ON d.device_type_id = t.id
		 WHERE sd.service_id = $1
		 ORDER BY d.device_name`, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *d)
	}
	return devices, rows.Err()
}

// DeleteWithFinancial removes a service ticket, its device associations and
// its linked expense ledger entry in one transaction. This is the only path
// that may delete a service-sourced ledger entry.
func (r *ServiceRepository) DeleteWithFinancial(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM financial_devices
		 WHERE financial_id IN (SELECT id FROM financials WHERE source_type = $1 AND source_id = $2)`,
		models.SourceTypeService, id); err != nil {
		return fmt.Errorf("failed to delete service ticket: %w", err)
	}
	if _, err := tx.Exec(ctx,
		"DELETE FROM financials WHERE source_type = $1 AND source_id = $2",
		models.SourceTypeService, id); err != nil {
		return fmt.Errorf("failed to delete service ticket: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM service_devices WHERE service_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete service ticket: %w", err)
	}
	tag, err := tx.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete service ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("service ticket %d not found", id)
	}

	return tx.Commit(ctx)
}
