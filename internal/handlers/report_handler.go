package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"toolrental-backend/internal/services"
	"toolrental-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// DeviceReport returns per-device earnings, optionally for one year
func (h *ReportHandler) DeviceReport(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.Service.DeviceReport(context.Background(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, rows)
}

// Summary returns ledger totals: monthly for ?year=, per year without it,
// totals only for a ?from=/?to= range
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("from") != "" || q.Get("to") != "" {
		from, err := time.Parse("2006-01-02", q.Get("from"))
		if err != nil {
			http.Error(w, "Invalid from date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		to, err := time.Parse("2006-01-02", q.Get("to"))
		if err != nil {
			http.Error(w, "Invalid to date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		report, err := h.Service.RangeSummary(context.Background(), from, to)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, report)
		return
	}

	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.Service.Summary(context.Background(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, report)
}

func yearParam(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &year, nil
}
