package models

import "time"

// Service is a maintenance ticket for one or more devices
type Service struct {
	ID          int       `json:"id"`
	TicketNr    string    `json:"ticket_nr"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Technician  string    `json:"technician"`
	ServiceDate time.Time `json:"service_date"`
	CostAmount  float64   `json:"cost_amount"`
}

// ServiceDevice links a service ticket to one device
type ServiceDevice struct {
	ID        int `json:"id"`
	ServiceID int `json:"service_id"`
	DeviceID  int `json:"device_id"`
}

// CreateServiceRequest is used when opening a service ticket. Technician
// falls back to the configured default when empty.
type CreateServiceRequest struct {
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Technician  string    `json:"technician"`
	ServiceDate time.Time `json:"service_date"`
	CostAmount  float64   `json:"cost_amount"`
	DeviceIDs   []int     `json:"device_ids"`
}

// ServiceDetails is the API shape for service listings
type ServiceDetails struct {
	Service
	Devices []Device `json:"devices"`
}
