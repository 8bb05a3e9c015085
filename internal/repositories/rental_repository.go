package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolrental-backend/internal/models"
)

type RentalRepository struct {
	DB *pgxpool.Pool
}

func NewRentalRepository(db *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{DB: db}
}

// CreateBooking persists one checkout as a single transaction: the customer
// (reused or inserted), the rental, its device associations, the matching
// revenue ledger entry and its device associations. Everything rolls back on
// the first failure — no partial writes. The request must already be
// validated; the ticket number is generated inside the transaction.
func (r *RentalRepository) CreateBooking(ctx context.Context, req *models.BookingRequest, ticket models.TicketFormat) (*models.BookingResult, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// 1. Resolve customer: existing by id, or insert the new one
	var customerID int
	if req.CustomerID != nil {
		if err := tx.QueryRow(ctx,
			"SELECT id FROM customers WHERE id = $1", *req.CustomerID,
		).Scan(&customerID); err != nil {
			return nil, fmt.Errorf("booking failed: customer %d: %w", *req.CustomerID, err)
		}
	} else {
		c := req.Customer
		if err := tx.QueryRow(ctx,
			`INSERT INTO customers (name, zipcode, city, address, email, id_number, comment)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			c.Name, c.Zipcode, c.City, c.Address, c.Email, c.IDNumber, c.Comment,
		).Scan(&customerID); err != nil {
			return nil, fmt.Errorf("booking failed: %w", err)
		}
	}

	// 2. Load the selected devices and total up their daily prices
	rows, err := tx.Query(ctx,
		"SELECT id, rent_price FROM devices WHERE id = ANY($1)", req.DeviceIDs)
	if err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}
	prices := make(map[int]float64, len(req.DeviceIDs))
	for rows.Next() {
		var id int
		var rentPrice float64
		if err := rows.Scan(&id, &rentPrice); err != nil {
			rows.Close()
			return nil, fmt.Errorf("booking failed: %w", err)
		}
		prices[id] = rentPrice
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}
	dailyPrices := make([]float64, 0, len(req.DeviceIDs))
	for _, id := range req.DeviceIDs {
		price, ok := prices[id]
		if !ok {
			return nil, fmt.Errorf("booking failed: device %d not found", id)
		}
		dailyPrices = append(dailyPrices, price)
	}
	totalAmount := models.BookingTotal(dailyPrices, req.RentalDays)

	// 3. Next ticket number, from the numbers already taken
	existing, err := ticketNumbers(ctx, tx, "rentals", ticket.Prefix)
	if err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}
	ticketNr := ticket.Next(existing)

	// 4. Rental row
	now := time.Now()
	var rentalID int
	if err := tx.QueryRow(ctx,
		`INSERT INTO rentals (ticket_nr, customer_id, rent_start, rental_days, payment_mode, comment, total_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		ticketNr, customerID, now, req.RentalDays, req.PaymentMode, req.Comment, totalAmount,
	).Scan(&rentalID); err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	// 5. Device associations; each rented device's counter goes up by one
	for _, deviceID := range req.DeviceIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO rental_devices (rental_id, device_id) VALUES ($1, $2)",
			rentalID, deviceID); err != nil {
			return nil, fmt.Errorf("booking failed: %w", err)
		}
		if _, err := tx.Exec(ctx,
			"UPDATE devices SET rent_count = rent_count + 1 WHERE id = $1",
			deviceID); err != nil {
			return nil, fmt.Errorf("booking failed: %w", err)
		}
	}

	// 6. Revenue ledger entry for the booking
	var financialID int
	if err := tx.QueryRow(ctx,
		`INSERT INTO financials (ticket_nr, entry_type, source_type, source_id, date, comment, amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		ticketNr, models.EntryTypeRevenue, models.SourceTypeRental, rentalID, now,
		fmt.Sprintf("Rental fee - %s", ticketNr), totalAmount,
	).Scan(&financialID); err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	// 7. Ledger-to-device associations
	for _, deviceID := range req.DeviceIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO financial_devices (financial_id, device_id) VALUES ($1, $2)",
			financialID, deviceID); err != nil {
			return nil, fmt.Errorf("booking failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("booking failed: %w", err)
	}

	return &models.BookingResult{
		RentalID:    rentalID,
		TicketNr:    ticketNr,
		TotalAmount: totalAmount,
	}, nil
}

func (r *RentalRepository) Get(ctx context.Context, id int) (*models.Rental, error) {
	var rental models.Rental
	err := r.DB.QueryRow(ctx,
		`SELECT id, ticket_nr, customer_id, rent_start, rental_days, payment_mode,
		        COALESCE(comment, ''), total_amount, COALESCE(contract, ''), COALESCE(invoice, ''),
		        review_email_sent, contract_email_sent, invoice_email_sent
		 FROM rentals WHERE id = $1`, id,
	).Scan(&rental.ID, &rental.TicketNr, &rental.CustomerID, &rental.RentStart,
		&rental.RentalDays, &rental.PaymentMode, &rental.Comment, &rental.TotalAmount,
		&rental.Contract, &rental.Invoice, &rental.ReviewEmailSent,
		&rental.ContractEmailSent, &rental.InvoiceEmailSent)
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// GetDetails returns one rental with its customer name and device rows
func (r *RentalRepository) GetDetails(ctx context.Context, id int) (*models.RentalDetails, error) {
	rental, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	details := &models.RentalDetails{Rental: *rental}

	if err := r.DB.QueryRow(ctx,
		"SELECT name FROM customers WHERE id = $1", rental.CustomerID,
	).Scan(&details.CustomerName); err != nil {
		return nil, err
	}

	devices, err := r.devicesOf(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Devices = devices
	return details, nil
}

// ListDetails returns all rentals, newest first, each with customer name and
// devices resolved through the association rows
func (r *RentalRepository) ListDetails(ctx context.Context) ([]*models.RentalDetails, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT r.id, r.ticket_nr, r.customer_id, r.rent_start, r.rental_days, r.payment_mode,
		        COALESCE(r.comment, ''), r.total_amount, COALESCE(r.contract, ''), COALESCE(r.invoice, ''),
		        r.review_email_sent, r.contract_email_sent, r.invoice_email_sent,
		        c.name
		 FROM rentals r JOIN customers c ON r.customer_id = c.id
		 ORDER BY r.rent_start DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*models.RentalDetails
	for rows.Next() {
		var d models.RentalDetails
		if err := rows.Scan(&d.ID, &d.TicketNr, &d.CustomerID, &d.RentStart,
			&d.RentalDays, &d.PaymentMode, &d.Comment, &d.TotalAmount,
			&d.Contract, &d.Invoice, &d.ReviewEmailSent,
			&d.ContractEmailSent, &d.InvoiceEmailSent, &d.CustomerName); err != nil {
			return nil, err
		}
		rentals = append(rentals, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rental := range rentals {
		devices, err := r.devicesOf(ctx, rental.ID)
		if err != nil {
			return nil, err
		}
		rental.Devices = devices
	}
	return rentals, nil
}

func (r *RentalRepository) devicesOf(ctx context.Context, rentalID int) ([]models.Device, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+deviceColumns+`
		 FROM rental_devices rd
		 JOIN devices d ON rd.device_id = d.id
		 LEFT JOIN device_types t ON d.device_type_id = t.id
		 WHERE rd.rental_id = $1
		 ORDER BY d.device_name`, rentalID)
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

// ListByDevice returns the rentals a device took part in, optionally limited
// to one calendar year
func (r *RentalRepository) ListByDevice(ctx context.Context, deviceID int, year *int) ([]*models.Rental, error) {
	query := `SELECT r.id, r.ticket_nr, r.customer_id, r.rent_start, r.rental_days, r.payment_mode,
	                 COALESCE(r.comment, ''), r.total_amount, COALESCE(r.contract, ''), COALESCE(r.invoice, ''),
	                 r.review_email_sent, r.contract_email_sent, r.invoice_email_sent
	          FROM rental_devices rd JOIN rentals r ON rd.rental_id = r.id
	          WHERE rd.device_id = $1`
	args := []any{deviceID}
	if year != nil {
		query += " AND EXTRACT(YEAR FROM r.rent_start) = $2"
		args = append(args, *year)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*models.Rental
	for rows.Next() {
		var rental models.Rental
		if err := rows.Scan(&rental.ID, &rental.TicketNr, &rental.CustomerID, &rental.RentStart,
			&rental.RentalDays, &rental.PaymentMode, &rental.Comment, &rental.TotalAmount,
			&rental.Contract, &rental.Invoice, &rental.ReviewEmailSent,
			&rental.ContractEmailSent, &rental.InvoiceEmailSent); err != nil {
			return nil, err
		}
		rentals = append(rentals, &rental)
	}
	return rentals, rows.Err()
}

// NominalDailyTotal returns the sum of listed per-day prices over all devices
// in a rental — the undiscounted daily total the booking was priced from
func (r *RentalRepository) NominalDailyTotal(ctx context.Context, rentalID int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(d.rent_price), 0)
		 FROM rental_devices rd JOIN devices d ON rd.device_id = d.id
		 WHERE rd.rental_id = $1`, rentalID).Scan(&total)
	return total, err
}

// ticketNumbers collects the ticket numbers already taken for a prefix.
// Runs inside the caller's transaction.
func ticketNumbers(ctx context.Context, q pgx.Tx, table, prefix string) ([]string, error) {
	rows, err := q.Query(ctx,
		fmt.Sprintf("SELECT ticket_nr FROM %s WHERE ticket_nr LIKE $1", table), prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var nr string
		if err := rows.Scan(&nr); err != nil {
			return nil, err
		}
		numbers = append(numbers, nr)
	}
	return numbers, rows.Err()
}
