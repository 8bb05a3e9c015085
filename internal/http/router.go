package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toolrental-backend/internal/handlers"
)

func NewRouter(
	customerHandler *handlers.CustomerHandler,
	deviceHandler *handlers.DeviceHandler,
	rentalHandler *handlers.RentalHandler,
	financialHandler *handlers.FinancialHandler,
	serviceHandler *handlers.ServiceHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")

	// Devices and the type catalog
	devicesAPI := r.PathPrefix("/api/devices").Subrouter()
	devicesAPI.HandleFunc("", deviceHandler.ListDevices).Methods("GET")
	devicesAPI.HandleFunc("", deviceHandler.CreateDevice).Methods("POST")
	devicesAPI.HandleFunc("/{id}", deviceHandler.GetDevice).Methods("GET")
	devicesAPI.HandleFunc("/{id}", deviceHandler.UpdateDevice).Methods("PUT")
	devicesAPI.HandleFunc("/{id}", deviceHandler.DeleteDevice).Methods("DELETE")
	r.HandleFunc("/api/device-types", deviceHandler.ListDeviceTypes).Methods("GET")

	// Rentals: booking, reads, receipt
	rentalsAPI := r.PathPrefix("/api/rentals").Subrouter()
	rentalsAPI.HandleFunc("", rentalHandler.ListRentals).Methods("GET")
	rentalsAPI.HandleFunc("", rentalHandler.CreateBooking).Methods("POST")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.GetRental).Methods("GET")
	rentalsAPI.HandleFunc("/{id}/receipt", rentalHandler.Receipt).Methods("GET")

	// Financial ledger
	financialsAPI := r.PathPrefix("/api/financials").Subrouter()
	financialsAPI.HandleFunc("", financialHandler.ListEntries).Methods("GET")
	financialsAPI.HandleFunc("", financialHandler.CreateEntry).Methods("POST")
	financialsAPI.HandleFunc("/{id}", financialHandler.GetEntry).Methods("GET")
	financialsAPI.HandleFunc("/{id}", financialHandler.DeleteEntry).Methods("DELETE")

	// Service tickets
	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.HandleFunc("", serviceHandler.ListTickets).Methods("GET")
	servicesAPI.HandleFunc("", serviceHandler.CreateTicket).Methods("POST")
	servicesAPI.HandleFunc("/{id}", serviceHandler.GetTicket).Methods("GET")
	servicesAPI.HandleFunc("/{id}", serviceHandler.DeleteTicket).Methods("DELETE")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/devices", reportHandler.DeviceReport).Methods("GET")
	reportsAPI.HandleFunc("/summary", reportHandler.Summary).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
