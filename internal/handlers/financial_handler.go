package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"toolrental-backend/internal/models"
	"toolrental-backend/internal/services"
	"toolrental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type FinancialHandler struct {
	Service *services.FinancialService
}

func NewFinancialHandler(s *services.FinancialService) *FinancialHandler {
	return &FinancialHandler{Service: s}
}

// CreateEntry records a manual ledger entry
func (h *FinancialHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFinancialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.Service.CreateEntry(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.JSON(w, http.StatusCreated, entry)
}

func (h *FinancialHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	entry, err := h.Service.GetEntry(context.Background(), id)
	if err != nil {
		http.Error(w, "Ledger entry not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, entry)
}

// ListEntries returns ledger entries, filtered by entry_type, source_type,
// from and to query parameters
func (h *FinancialHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &models.FinancialFilter{
		EntryType:  models.EntryType(q.Get("entry_type")),
		SourceType: models.SourceType(q.Get("source_type")),
	}
	if from := q.Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			http.Error(w, "Invalid from date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		filter.StartDate = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			http.Error(w, "Invalid to date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		filter.EndDate = &t
	}
	if limit := q.Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}
	if offset := q.Get("offset"); offset != "" {
		filter.Offset, _ = strconv.Atoi(offset)
	}

	entries, err := h.Service.ListEntries(context.Background(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.JSON(w, http.StatusOK, entries)
}

func (h *FinancialHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteEntry(context.Background(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
