package models

import "time"

// EntryType represents the direction of a ledger entry
type EntryType string

const (
	EntryTypeRevenue EntryType = "revenue"
	EntryTypeExpense EntryType = "expense"
)

func (t EntryType) Valid() bool {
	return t == EntryTypeRevenue || t == EntryTypeExpense
}

// SourceType identifies what produced a ledger entry
type SourceType string

const (
	SourceTypeRental    SourceType = "rental"
	SourceTypeService   SourceType = "service"
	SourceTypePurchase  SourceType = "purchase"
	SourceTypeMarketing SourceType = "marketing"
	SourceTypeOther     SourceType = "other"
)

func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeRental, SourceTypeService, SourceTypePurchase, SourceTypeMarketing, SourceTypeOther:
		return true
	}
	return false
}

// Financial is a single ledger row: one revenue or expense event, optionally
// attributed to devices through financial_devices rows.
type Financial struct {
	ID         int        `json:"id"`
	TicketNr   string     `json:"ticket_nr"`
	EntryType  EntryType  `json:"entry_type"`
	SourceType SourceType `json:"source_type"`
	SourceID   *int       `json:"source_id"`
	Date       time.Time  `json:"date"`
	Comment    string     `json:"comment"`
	Amount     float64    `json:"amount"`
}

// FinancialDevice links a ledger entry to one device sharing its amount
type FinancialDevice struct {
	ID          int `json:"id"`
	FinancialID int `json:"financial_id"`
	DeviceID    int `json:"device_id"`
}

// CreateFinancialRequest is used for manual ledger entries. Entries sourced
// from rentals and service tickets are created by those transactions, never
// through this request.
type CreateFinancialRequest struct {
	TicketNr   string     `json:"ticket_nr"`
	EntryType  EntryType  `json:"entry_type"`
	SourceType SourceType `json:"source_type"`
	Date       time.Time  `json:"date"`
	Comment    string     `json:"comment"`
	Amount     float64    `json:"amount"`
	DeviceIDs  []int      `json:"device_ids"`
}

// FinancialFilter is used for filtering ledger listings
type FinancialFilter struct {
	EntryType  EntryType  `json:"entry_type"`
	SourceType SourceType `json:"source_type"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
