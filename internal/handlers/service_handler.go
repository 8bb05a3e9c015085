package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/services"
	"toolrental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type ServiceHandler struct {
	Service *services.ServiceTicketService
}

func NewServiceHandler(s *services.ServiceTicketService) *ServiceHandler {
	return &ServiceHandler{Service: s}
}

// CreateTicket opens a service ticket; its cost lands in the ledger in the
// same transaction
func (h *ServiceHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	svc, err := h.Service.CreateTicket(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.JSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	svc, err := h.Service.GetTicket(context.Background(), id)
	if err != nil {
		http.Error(w, "Service ticket not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, svc)
}

func (h *ServiceHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Service.ListTickets(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, tickets)
}

// DeleteTicket removes the ticket and its ledger entry together
func (h *ServiceHandler) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteTicket(context.Background(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
