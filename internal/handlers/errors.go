package handlers

import (
	"errors"
	"net/http"

	"toolrental-backend/internal/services"
)

// writeError maps service errors to status codes. Referential guards come
// back as 409 so the client can tell a blocked delete from a broken one.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerHasRentals),
		errors.Is(err, services.ErrDeviceInUse),
		errors.Is(err, services.ErrEntrySourced):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
