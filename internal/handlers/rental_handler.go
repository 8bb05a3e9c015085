package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"toolrental-backend/internal/cache"
	"toolrental-backend/internal/documents"
	"toolrental-backend/internal/metrics"
	"toolrental-backend/internal/models"
	"toolrental-backend/internal/services"
	"toolrental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	Service     *services.RentalService
	CompanyName string
}

func NewRentalHandler(s *services.RentalService, companyName string) *RentalHandler {
	return &RentalHandler{Service: s, CompanyName: companyName}
}

// CreateBooking runs the checkout: customer, rental, device links and the
// revenue ledger entry, all in one transaction
func (h *RentalHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Service.Book(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// rent_count moved, the cached catalog is stale
	cache.InvalidateDeviceCaches(context.Background())
	metrics.BookingsTotal.Inc()
	utils.JSON(w, http.StatusCreated, result)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	rental, err := h.Service.GetRental(context.Background(), id)
	if err != nil {
		http.Error(w, "Rental not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.Service.ListRentals(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, rentals)
}

// Receipt serves the rental receipt as a PDF download
func (h *RentalHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	rental, err := h.Service.GetRental(context.Background(), id)
	if err != nil {
		http.Error(w, "Rental not found", http.StatusNotFound)
		return
	}

	pdf, err := documents.RentalReceipt(h.CompanyName, rental)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", rental.TicketNr))
	w.Write(pdf)
}
