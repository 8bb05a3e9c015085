package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolrental-backend/internal/models"
)

type FinancialRepository struct {
	DB *pgxpool.Pool
}

func NewFinancialRepository(db *pgxpool.Pool) *FinancialRepository {
	return &FinancialRepository{DB: db}
}

// Create inserts a ledger entry and its device associations in one
// transaction
func (r *FinancialRepository) Create(ctx context.Context, entry *models.Financial, deviceIDs []int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx,
		`INSERT INTO financials (ticket_nr, entry_type, source_type, source_id, date, comment, amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		entry.TicketNr, entry.EntryType, entry.SourceType, entry.SourceID,
		entry.Date, entry.Comment, entry.Amount,
	).Scan(&entry.ID); err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	for _, deviceID := range deviceIDs {
		if _, err := tx.Exec(ctx,
			"INSERT INTO financial_devices (financial_id, device_id) VALUES ($1, $2)",
			entry.ID, deviceID); err != nil {
			return fmt.Errorf("failed to attach device %d: %w", deviceID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *FinancialRepository) Get(ctx context.Context, id int) (*models.Financial, error) {
	var f models.Financial
	err := r.DB.QueryRow(ctx,
		`SELECT id, ticket_nr, entry_type, source_type, source_id, date, COALESCE(comment, ''), amount
		 FROM financials WHERE id = $1`, id,
	).Scan(&f.ID, &f.TicketNr, &f.EntryType, &f.SourceType, &f.SourceID, &f.Date, &f.Comment, &f.Amount)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns ledger entries matching the filter, newest first
func (r *FinancialRepository) List(ctx context.Context, filter *models.FinancialFilter) ([]models.Financial, error) {
	var conditions []string
	var args []any
	argNum := 1

	if filter.EntryType != "" {
		conditions = append(conditions, fmt.Sprintf("entry_type = $%d", argNum))
		args = append(args, filter.EntryType)
		argNum++
	}
	if filter.SourceType != "" {
		conditions = append(conditions, fmt.Sprintf("source_type = $%d", argNum))
		args = append(args, filter.SourceType)
		argNum++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argNum))
		args = append(args, filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argNum))
		args = append(args, filter.EndDate)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT id, ticket_nr, entry_type, source_type, source_id, date, COALESCE(comment, ''), amount
		FROM financials
		%s
		ORDER BY date DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)

	args = append(args, limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Financial
	for rows.Next() {
		var f models.Financial
		if err := rows.Scan(&f.ID, &f.TicketNr, &f.EntryType, &f.SourceType,
			&f.SourceID, &f.Date, &f.Comment, &f.Amount); err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

// GetBySource finds the ledger entry a rental or service ticket produced.
// Returns nil when no entry exists for that source.
func (r *FinancialRepository) GetBySource(ctx context.Context, sourceType models.SourceType, sourceID int) (*models.Financial, error) {
	var f models.Financial
	err := r.DB.QueryRow(ctx,
		`SELECT id, ticket_nr, entry_type, source_type, source_id, date, COALESCE(comment, ''), amount
		 FROM financials WHERE source_type = $1 AND source_id = $2`,
		sourceType, sourceID,
	).Scan(&f.ID, &f.TicketNr, &f.EntryType, &f.SourceType, &f.SourceID, &f.Date, &f.Comment, &f.Amount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// Delete removes a ledger entry and its device associations in one
// transaction. The source-type guard lives in the service layer.
func (r *FinancialRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM financial_devices WHERE financial_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	tag, err := tx.Exec(ctx, "DELETE FROM financials WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %d not found", id)
	}

	return tx.Commit(ctx)
}

// AttachedEntry is a ledger entry seen from one attached device, with the
// total number of devices sharing the amount
type AttachedEntry struct {
	models.Financial
	DeviceCount int `json:"device_count"`
}

// ListAttachedByDevice returns every ledger entry attached to the device,
// each carrying how many devices share it
func (r *FinancialRepository) ListAttachedByDevice(ctx context.Context, deviceID int) ([]AttachedEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT f.id, f.ticket_nr, f.entry_type, f.source_type, f.source_id, f.date,
		        COALESCE(f.comment, ''), f.amount,
		        (SELECT COUNT(*) FROM financial_devices fd2 WHERE fd2.financial_id = f.id)
		 FROM financial_devices fd
		 JOIN financials f ON fd.financial_id = f.id
		 WHERE fd.device_id = $1
		 ORDER BY f.date DESC, f.id DESC`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []AttachedEntry
	for rows.Next() {
		var e AttachedEntry
		if err := rows.Scan(&e.ID, &e.TicketNr, &e.EntryType, &e.SourceType,
			&e.SourceID, &e.Date, &e.Comment, &e.Amount, &e.DeviceCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SumByTypeBetween totals entries of one type with date in [from, to)
func (r *FinancialRepository) SumByTypeBetween(ctx context.Context, entryType models.EntryType, from, to time.Time) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM financials
		 WHERE entry_type = $1 AND date >= $2 AND date < $3`,
		entryType, from, to).Scan(&total)
	return total, err
}

// Years returns the distinct calendar years the ledger spans, ascending
func (r *FinancialRepository) Years(ctx context.Context) ([]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year FROM financials ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}
