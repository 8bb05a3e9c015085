package models

import "time"

// PaymentMode represents how a rental was paid
type PaymentMode string

const (
	PaymentModeCash     PaymentMode = "cash"
	PaymentModeCard     PaymentMode = "card"
	PaymentModeTransfer PaymentMode = "transfer"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeTransfer:
		return true
	}
	return false
}

type Rental struct {
	ID                int         `json:"id"`
	TicketNr          string      `json:"ticket_nr"`
	CustomerID        int         `json:"customer_id"`
	RentStart         time.Time   `json:"rent_start"`
	RentalDays        int         `json:"rental_days"`
	PaymentMode       PaymentMode `json:"payment_mode"`
	Comment           string      `json:"comment,omitempty"`
	TotalAmount       float64     `json:"total_amount"`
	Contract          string      `json:"contract,omitempty"`
	Invoice           string      `json:"invoice,omitempty"`
	ReviewEmailSent   bool        `json:"review_email_sent"`
	ContractEmailSent bool        `json:"contract_email_sent"`
	InvoiceEmailSent  bool        `json:"invoice_email_sent"`
}

// BookingTotal prices a checkout: the daily prices of the selected devices
// summed, times the rental days
func BookingTotal(dailyPrices []float64, rentalDays int) float64 {
	var daily float64
	for _, price := range dailyPrices {
		daily += price
	}
	return daily * float64(rentalDays)
}

// RentalDevice is the association row linking one rental to one device
type RentalDevice struct {
	ID       int `json:"id"`
	RentalID int `json:"rental_id"`
	DeviceID int `json:"device_id"`
}

// BookingRequest is the checkout input: an existing customer by id or the
// field values for a new one, plus the selected devices and terms.
type BookingRequest struct {
	CustomerID  *int                   `json:"customer_id"`
	Customer    *CreateCustomerRequest `json:"customer"`
	DeviceIDs   []int                  `json:"device_ids"`
	RentalDays  int                    `json:"rental_days"`
	PaymentMode PaymentMode            `json:"payment_mode"`
	Comment     string                 `json:"comment"`
}

// BookingResult is returned after a successful booking
type BookingResult struct {
	RentalID    int     `json:"rental_id"`
	TicketNr    string  `json:"ticket_nr"`
	TotalAmount float64 `json:"total_amount"`
}

// RentalDetails is the API shape for rental listings: the rental with its
// customer and device rows resolved through the join tables (no object
// cycles, ids only on the stored rows).
type RentalDetails struct {
	Rental
	CustomerName string   `json:"customer_name"`
	Devices      []Device `json:"devices"`
}
