package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"toolrental-backend/internal/cache"
	"toolrental-backend/internal/models"
	"toolrental-backend/internal/services"
	"toolrental-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type DeviceHandler struct {
	Service *services.DeviceService
}

func NewDeviceHandler(s *services.DeviceService) *DeviceHandler {
	return &DeviceHandler{Service: s}
}

func (h *DeviceHandler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	device, err := h.Service.CreateDevice(context.Background(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cache.InvalidateDeviceCaches(context.Background())
	utils.JSON(w, http.StatusCreated, device)
}

func (h *DeviceHandler) GetDevice(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	device, err := h.Service.GetDevice(context.Background(), id)
	if err != nil {
		http.Error(w, "Device not found", http.StatusNotFound)
		return
	}

	utils.JSON(w, http.StatusOK, device)
}

// ListDevices returns the catalog, served from Redis when warm. With
// ?available=true only devices that can go out.
func (h *DeviceHandler) ListDevices(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	availableOnly := r.URL.Query().Get("available") == "true"

	key := cache.DeviceListKey
	if availableOnly {
		key = cache.DeviceAvailableKey
	}
	if data, ok := cache.GetCached(ctx, key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	var devices []*models.Device
	var err error
	if availableOnly {
		devices, err = h.Service.ListAvailableDevices(ctx)
	} else {
		devices, err = h.Service.ListDevices(ctx)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(devices)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cache.SetCached(ctx, key, payload, 5*time.Minute)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (h *DeviceHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var req models.UpdateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	device, err := h.Service.UpdateDevice(context.Background(), id, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cache.InvalidateDeviceCaches(context.Background())
	utils.JSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteDevice(context.Background(), id); err != nil {
		writeError(w, err)
		return
	}

	cache.InvalidateDeviceCaches(context.Background())
	w.WriteHeader(http.StatusNoContent)
}

func (h *DeviceHandler) ListDeviceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListDeviceTypes(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, types)
}
